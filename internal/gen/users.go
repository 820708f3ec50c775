package gen

import (
	"staygen/internal/dataset"
	"staygen/internal/fake"
)

// Users generates the full user population. The admin floor scales the
// target up so admins stay a small fraction of the table: at least 20
// total users per requested admin. Roles are assigned in fixed order,
// admins first, then hosts, the remainder guests.
func Users(fp *fake.Provider, requested, minAdmins int) []dataset.User {
	total := Floor(requested, minAdmins*20)

	numAdmins := minAdmins
	numHosts := total * 25 / 100
	if numHosts < 5 {
		numHosts = 5
	}

	users := make([]dataset.User, 0, total)
	for id := 1; id <= total; id++ {
		role := dataset.RoleGuest
		switch {
		case id <= numAdmins:
			role = dataset.RoleAdmin
		case id <= numAdmins+numHosts:
			role = dataset.RoleHost
		}

		u := dataset.User{
			ID:               id,
			Name:             fp.Name(),
			Email:            fp.Email(),
			Password:         fp.Password(),
			Role:             role,
			DateOfBirth:      fp.DateOfBirth(18, 75),
			Address:          fp.Address(),
			RegistrationDate: fp.DateThisDecade(),
			Status:           fake.Pick(fp, userStatuses),
		}
		if fp.Chance(90) {
			phone := fp.Phone()
			u.Phone = &phone
		}
		if fp.Chance(95) {
			gender := fake.Pick(fp, genders)
			u.Gender = &gender
		}
		if fp.Chance(85) {
			last := fp.DateTimeThisYear()
			u.LastLogin = &last
		}
		users = append(users, u)
	}
	return users
}
