package gen

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"staygen/internal/dataset"
)

const minTableEntries = 20

// Validate checks the structural invariants of the core tables and
// returns a human-readable issue per violation. An empty slice means
// the dataset passed.
func Validate(d *dataset.Dataset) []string {
	var issues []string

	if len(d.Users) < minTableEntries {
		issues = append(issues, fmt.Sprintf("users table has fewer than %d entries", minTableEntries))
	}
	if len(d.Admins) < minTableEntries {
		issues = append(issues, fmt.Sprintf("admins table has fewer than %d entries", minTableEntries))
	}
	if len(d.Accommodations) < minTableEntries {
		issues = append(issues, fmt.Sprintf("accommodations table has fewer than %d entries", minTableEntries))
	}

	userIDs := make(map[int]bool, len(d.Users))
	hostIDs := make(map[int]bool)
	for _, u := range d.Users {
		userIDs[u.ID] = true
		if u.Role == dataset.RoleHost {
			hostIDs[u.ID] = true
		}
	}

	for _, a := range d.Admins {
		if !userIDs[a.UserID] {
			issues = append(issues, fmt.Sprintf("admins table references missing user id %d", a.UserID))
		}
	}
	for _, a := range d.Accommodations {
		if !hostIDs[a.HostID] {
			issues = append(issues, fmt.Sprintf("accommodations table references host id %d that is not a host user", a.HostID))
		}
	}
	return issues
}

// Audit cross-checks booking references against users and accommodations
// and logs findings without failing the run.
func Audit(d *dataset.Dataset, log *logrus.Logger) {
	hostIDs := make(map[int]bool)
	guestIDs := make(map[int]bool)
	for _, u := range d.Users {
		switch u.Role {
		case dataset.RoleHost:
			hostIDs[u.ID] = true
		case dataset.RoleGuest:
			guestIDs[u.ID] = true
		}
	}
	accIDs := make(map[int]bool, len(d.Accommodations))
	for _, a := range d.Accommodations {
		accIDs[a.ID] = true
	}

	var invalidHosts, invalidGuests, invalidAccs int
	for _, a := range d.Accommodations {
		if !hostIDs[a.HostID] {
			invalidHosts++
		}
	}
	for _, b := range d.Bookings {
		if !guestIDs[b.GuestID] {
			invalidGuests++
		}
		if !accIDs[b.AccommodationID] {
			invalidAccs++
		}
	}

	if invalidHosts > 0 {
		log.WithField("count", invalidHosts).Error("accommodations with invalid hosts")
	} else {
		log.Info("all accommodations have valid hosts")
	}
	if invalidGuests > 0 {
		log.WithField("count", invalidGuests).Error("bookings with invalid guests")
	} else {
		log.Info("all bookings have valid guests")
	}
	if invalidAccs > 0 {
		log.WithField("count", invalidAccs).Error("bookings referencing missing accommodations")
	} else {
		log.Info("all bookings reference valid accommodations")
	}

	if len(d.Accommodations) > len(hostIDs) {
		log.WithFields(logrus.Fields{
			"accommodations": len(d.Accommodations),
			"hosts":          len(hostIDs),
		}).Warn("more accommodations than hosts")
	}
	if len(d.Bookings) > len(guestIDs) {
		log.WithFields(logrus.Fields{
			"bookings": len(d.Bookings),
			"guests":   len(guestIDs),
		}).Warn("more bookings than guests")
	}
}
