package gen

import (
	"staygen/internal/dataset"
	"staygen/internal/fake"
)

// socialURL builds a profile URL for a known network, falling back to a
// random URL for anything unrecognized.
func socialURL(fp *fake.Provider, network string) string {
	base, ok := socialBaseURLs[network]
	if !ok {
		base = fp.URL()
	}
	return base + "/" + fp.Username()
}

// SocialNetworks links roughly a third of users to between one and three
// distinct networks each.
func SocialNetworks(fp *fake.Provider, users []dataset.User) ([]dataset.SocialNetwork, error) {
	if len(users) == 0 {
		return nil, validationf("users table is empty, cannot generate social networks")
	}

	var links []dataset.SocialNetwork
	for _, u := range users {
		if !fp.Chance(30) {
			continue
		}
		used := make(map[string]bool, 3)
		attempts := fp.Between(1, 3)
		for i := 0; i < attempts; i++ {
			network := fake.Pick(fp, socialNetworkNames)
			if used[network] {
				continue
			}
			used[network] = true
			links = append(links, dataset.SocialNetwork{
				UserID:     u.ID,
				Network:    network,
				ProfileURL: socialURL(fp, network),
			})
		}
	}
	return links, nil
}

// Profiles creates a profile for every non-admin user with a composed
// bio, a picture URL and one social link.
func Profiles(fp *fake.Provider, users []dataset.User) ([]dataset.Profile, error) {
	var profiles []dataset.Profile
	for _, u := range users {
		if u.Role == dataset.RoleAdmin {
			continue
		}
		profiles = append(profiles, dataset.Profile{
			ID:         len(profiles) + 1,
			UserID:     u.ID,
			Bio:        truncate(composeBio(fp), 255),
			PictureURL: truncate(fp.URL(), 255),
			SocialLink: socialURL(fp, fake.Pick(fp, socialNetworkNames)),
		})
	}
	if len(profiles) == 0 {
		return nil, validationf("no non-admin users available to generate profiles")
	}
	return profiles, nil
}

func composeBio(fp *fake.Provider) string {
	return capitalize(fake.Pick(fp, bioTraits)) + " and " + fake.Pick(fp, bioHobbies) +
		", working as " + fake.Pick(fp, bioProfessions) +
		", with a dream " + fake.Pick(fp, bioAspirations) + "."
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Messages simulates user-to-user messaging, scaled by the user count
// with a hard floor. Senders never message themselves.
func Messages(fp *fake.Provider, users []dataset.User, min, factor int) ([]dataset.Message, error) {
	if len(users) < 2 {
		return nil, validationf("at least two users are required to generate messages")
	}

	total := Scaled(len(users), factor, min)
	messages := make([]dataset.Message, 0, total)
	for id := 1; id <= total; id++ {
		sender := fake.Pick(fp, users).ID
		receiver := fake.Pick(fp, users).ID
		for sender == receiver {
			receiver = fake.Pick(fp, users).ID
		}
		messages = append(messages, dataset.Message{
			ID:         id,
			SenderID:   sender,
			ReceiverID: receiver,
			Content:    fp.Text(0),
			Date:       fp.DateThisYear(),
		})
	}
	return messages, nil
}

// Notifications spreads five notifications per user, with a floor,
// evenly across the user base.
func Notifications(fp *fake.Provider, users []dataset.User, min int) ([]dataset.Notification, error) {
	if len(users) == 0 {
		return nil, validationf("no users available to assign notifications")
	}

	total := Scaled(len(users), 5, min)
	counts := SpreadEvenly(total, len(users))

	notifications := make([]dataset.Notification, 0, total)
	for i, u := range users {
		for n := 0; n < counts[i]; n++ {
			notifications = append(notifications, dataset.Notification{
				UserID:  u.ID,
				Message: fp.Text(0),
				Date:    fp.DateThisYear(),
			})
		}
	}
	return notifications, nil
}
