// Package gen produces the synthetic marketplace dataset. Generators run
// in dependency order; a generator that cannot satisfy its preconditions
// degrades to an empty table instead of aborting the run.
package gen

import (
	"time"

	"github.com/sirupsen/logrus"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

// Config carries every tunable of a generation run. Zero values fall
// back to the documented defaults via DefaultConfig.
type Config struct {
	Seed int64

	Users     int
	MinAdmins int

	Countries int
	Cities    int

	Accommodations int
	Photos         int
	HouseRuleLinks int
	AmenityLinks   int
	MinHouseRules  int
	MinAmenities   int

	MaxBookingsPerGuest int
	BookingMultiplier   float64
	MinCancellations    int

	MinReviews   int
	MinResponses int

	MinMessages      int
	MessageFactor    int
	MinNotifications int

	MinActions   int
	Transactions int
}

// DefaultConfig mirrors the documented per-table defaults.
func DefaultConfig() Config {
	return Config{
		Seed:                1,
		Users:               100,
		MinAdmins:           20,
		Countries:           20,
		Accommodations:      50,
		Photos:              255,
		HouseRuleLinks:      85,
		AmenityLinks:        153,
		MinHouseRules:       20,
		MinAmenities:        20,
		MaxBookingsPerGuest: 3,
		BookingMultiplier:   1.5,
		MinCancellations:    20,
		MinReviews:          20,
		MinResponses:        20,
		MinMessages:         20,
		MessageFactor:       2,
		MinNotifications:    20,
		MinActions:          50,
	}
}

// Pipeline runs the generators in dependency order against one seeded
// fake provider.
type Pipeline struct {
	cfg Config
	fp  *fake.Provider
	log *logrus.Logger
}

func NewPipeline(cfg Config, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
	}
	return &Pipeline{cfg: cfg, fp: fake.New(cfg.Seed), log: log}
}

// Run executes every generator and always returns a complete Dataset.
// A failed generator leaves its table empty; downstream generators see
// the empty table and degrade in turn.
func (p *Pipeline) Run() *dataset.Dataset {
	d := &dataset.Dataset{}
	cfg := p.cfg
	fp := p.fp

	stages := []struct {
		table string
		run   func() (int, error)
	}{
		{"countries", func() (int, error) {
			d.Countries = Countries(fp, cfg.Countries)
			return len(d.Countries), nil
		}},
		{"house_rules", func() (int, error) {
			d.HouseRules = HouseRules(fp, cfg.MinHouseRules)
			return len(d.HouseRules), nil
		}},
		{"amenities", func() (int, error) {
			d.Amenities = Amenities(fp, cfg.MinAmenities)
			return len(d.Amenities), nil
		}},
		{"cities", func() (int, error) {
			var err error
			d.Cities, err = Cities(fp, d.Countries, cfg.Cities)
			return len(d.Cities), err
		}},
		{"users", func() (int, error) {
			d.Users = Users(fp, cfg.Users, cfg.MinAdmins)
			return len(d.Users), nil
		}},
		{"accommodations", func() (int, error) {
			var err error
			d.Accommodations, err = Accommodations(fp, d.Users, d.Cities, d.Countries, cfg.Accommodations)
			return len(d.Accommodations), err
		}},
		{"photos", func() (int, error) {
			var err error
			d.Photos, err = Photos(fp, d.Accommodations, cfg.Photos)
			return len(d.Photos), err
		}},
		{"accommodation_house_rules", func() (int, error) {
			var err error
			d.AccommodationHouseRules, err = AccommodationHouseRules(fp, d.Accommodations, d.HouseRules, cfg.HouseRuleLinks)
			return len(d.AccommodationHouseRules), err
		}},
		{"accommodation_amenities", func() (int, error) {
			var err error
			d.AccommodationAmenities, err = AccommodationAmenities(fp, d.Accommodations, d.Amenities, cfg.AmenityLinks)
			return len(d.AccommodationAmenities), err
		}},
		{"bookings", func() (int, error) {
			var err error
			d.Bookings, err = Bookings(fp, d.Users, d.Accommodations, cfg.MaxBookingsPerGuest, cfg.BookingMultiplier)
			return len(d.Bookings), err
		}},
		{"payments", func() (int, error) {
			var err error
			d.Payments, err = Payments(fp, d.Bookings)
			return len(d.Payments), err
		}},
		{"cancellations", func() (int, error) {
			var err error
			d.Cancellations, err = Cancellations(fp, d.Bookings, cfg.MinCancellations)
			return len(d.Cancellations), err
		}},
		{"availability", func() (int, error) {
			var err error
			d.Availability, err = Availability(d.Accommodations, d.Bookings)
			return len(d.Availability), err
		}},
		{"prices", func() (int, error) {
			var err error
			d.Prices, err = Prices(d.Accommodations)
			return len(d.Prices), err
		}},
		{"social_networks", func() (int, error) {
			var err error
			d.SocialNetworks, err = SocialNetworks(fp, d.Users)
			return len(d.SocialNetworks), err
		}},
		{"profiles", func() (int, error) {
			var err error
			d.Profiles, err = Profiles(fp, d.Users)
			return len(d.Profiles), err
		}},
		{"messages", func() (int, error) {
			var err error
			d.Messages, err = Messages(fp, d.Users, cfg.MinMessages, cfg.MessageFactor)
			return len(d.Messages), err
		}},
		{"reviews", func() (int, error) {
			var err error
			d.Reviews, err = Reviews(fp, d.Accommodations, d.Bookings, d.Users, cfg.MinReviews)
			return len(d.Reviews), err
		}},
		{"host_responses", func() (int, error) {
			var err error
			d.HostResponses, err = HostResponses(fp, d.Reviews, cfg.MinResponses)
			return len(d.HostResponses), err
		}},
		{"commissions", func() (int, error) {
			var err error
			d.Commissions, err = Commissions(d.Bookings)
			return len(d.Commissions), err
		}},
		{"admins", func() (int, error) {
			var err error
			d.Admins, err = Admins(fp, d.Users, cfg.MinAdmins)
			return len(d.Admins), err
		}},
		{"admin_actions", func() (int, error) {
			var err error
			d.AdminActions, err = AdminActions(fp, d.Admins, cfg.MinActions)
			return len(d.AdminActions), err
		}},
		{"transactions", func() (int, error) {
			var err error
			d.Transactions, err = Transactions(fp, d.Payments, cfg.Transactions)
			return len(d.Transactions), err
		}},
		{"notifications", func() (int, error) {
			var err error
			d.Notifications, err = Notifications(fp, d.Users, cfg.MinNotifications)
			return len(d.Notifications), err
		}},
	}

	for _, s := range stages {
		start := time.Now()
		rows, err := s.run()
		entry := p.log.WithField("table", s.table).WithField("duration", time.Since(start))
		switch {
		case err != nil && IsValidation(err):
			entry.WithError(err).Warn("generator degraded to an empty table")
		case err != nil:
			entry.WithError(err).Error("generator failed")
		default:
			entry.WithField("rows", rows).Info("table generated")
		}
	}
	return d
}
