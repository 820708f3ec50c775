package gen

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staygen/internal/dataset"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPipelineProducesFullDataset(t *testing.T) {
	d := NewPipeline(DefaultConfig(), quietLogger()).Run()

	assert.Len(t, d.Countries, 20)
	assert.GreaterOrEqual(t, len(d.Cities), 60)
	assert.Len(t, d.Users, 400)
	assert.Len(t, d.Accommodations, 50)
	assert.Len(t, d.Photos, 255)
	assert.Len(t, d.AccommodationHouseRules, 85)
	assert.Len(t, d.AccommodationAmenities, 153)
	assert.Len(t, d.HouseRules, 20)
	assert.Len(t, d.Amenities, 20)
	assert.NotEmpty(t, d.Bookings)
	assert.NotEmpty(t, d.Payments)
	assert.GreaterOrEqual(t, len(d.Cancellations), 20)
	assert.Len(t, d.Availability, 50*30)
	assert.Len(t, d.Prices, 50)
	assert.GreaterOrEqual(t, len(d.Reviews), 20)
	assert.GreaterOrEqual(t, len(d.HostResponses), 20)
	assert.NotEmpty(t, d.Commissions)
	assert.Len(t, d.Admins, 20)
	assert.Len(t, d.AdminActions, 200)
	assert.Len(t, d.Messages, 800)
	assert.Len(t, d.Notifications, 2000)
	assert.Len(t, d.Transactions, len(d.Payments))
	assert.NotEmpty(t, d.SocialNetworks)
	assert.Len(t, d.Profiles, 380)

	assert.Empty(t, Validate(d))
}

func TestPipelineReferentialIntegrity(t *testing.T) {
	d := NewPipeline(DefaultConfig(), quietLogger()).Run()

	userIDs := make(map[int]bool)
	for _, u := range d.Users {
		userIDs[u.ID] = true
	}
	accIDs := make(map[int]bool)
	for _, a := range d.Accommodations {
		accIDs[a.ID] = true
	}
	bookingIDs := make(map[int]bool)
	for _, b := range d.Bookings {
		bookingIDs[b.ID] = true
		assert.True(t, userIDs[b.GuestID])
		assert.True(t, accIDs[b.AccommodationID])
	}
	paymentIDs := make(map[int]bool)
	for _, p := range d.Payments {
		paymentIDs[p.ID] = true
		assert.True(t, bookingIDs[p.BookingID])
	}
	for _, c := range d.Cancellations {
		assert.True(t, bookingIDs[c.BookingID])
	}
	for _, c := range d.Commissions {
		assert.True(t, bookingIDs[c.BookingID])
	}
	for _, tx := range d.Transactions {
		assert.True(t, paymentIDs[tx.PaymentID])
	}
	reviewIDs := make(map[int]bool)
	for _, r := range d.Reviews {
		reviewIDs[r.ID] = true
		assert.True(t, userIDs[r.UserID])
		assert.True(t, accIDs[r.AccommodationID])
	}
	for _, hr := range d.HostResponses {
		assert.True(t, reviewIDs[hr.ReviewID])
	}
	cityIDs := make(map[int]bool)
	countryIDs := make(map[int]bool)
	for _, c := range d.Countries {
		countryIDs[c.ID] = true
	}
	for _, c := range d.Cities {
		cityIDs[c.ID] = true
		assert.True(t, countryIDs[c.CountryID])
	}
	for _, a := range d.Accommodations {
		assert.True(t, cityIDs[a.CityID])
		assert.True(t, countryIDs[a.CountryID])
	}
}

func TestPipelineDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	a := NewPipeline(cfg, quietLogger()).Run()
	b := NewPipeline(cfg, quietLogger()).Run()

	require.Equal(t, len(a.Bookings), len(b.Bookings))
	for i := range a.Bookings {
		assert.Equal(t, a.Bookings[i].GuestID, b.Bookings[i].GuestID)
		assert.Equal(t, a.Bookings[i].AccommodationID, b.Bookings[i].AccommodationID)
		assert.Equal(t, a.Bookings[i].CheckIn, b.Bookings[i].CheckIn)
		assert.Equal(t, a.Bookings[i].Discount, b.Bookings[i].Discount)
	}
	assert.Equal(t, a.Countries, b.Countries)
}

func TestPipelineDegradesWithoutAdmins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinAdmins = 0
	cfg.Users = 10

	d := NewPipeline(cfg, quietLogger()).Run()

	// No admin users: admin-side tables come out empty but the run completes.
	assert.Empty(t, d.Admins)
	assert.Empty(t, d.AdminActions)
	assert.NotEmpty(t, d.Users)
	assert.NotEmpty(t, d.Accommodations)
	assert.NotEmpty(t, Validate(d))
}

func TestPipelineTablesExportShape(t *testing.T) {
	d := NewPipeline(DefaultConfig(), quietLogger()).Run()
	tables := d.Tables()
	require.Len(t, tables, 24)

	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
		require.NotEmpty(t, tbl.Columns, "table %s has no columns", tbl.Name)
		for _, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Columns), "table %s row width mismatch", tbl.Name)
		}
	}
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "bookings")
	assert.Contains(t, names, "accommodation_house_rules")
}

func TestValidateFlagsBadReferences(t *testing.T) {
	d := NewPipeline(DefaultConfig(), quietLogger()).Run()
	require.Empty(t, Validate(d))

	d.Admins = append(d.Admins, dataset.Admin{ID: 99, UserID: 99999})
	issues := Validate(d)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "99999")
}

func TestAuditRunsClean(t *testing.T) {
	d := NewPipeline(DefaultConfig(), quietLogger()).Run()
	// Audit only logs; the dataset from a default run must not panic it.
	Audit(d, quietLogger())
}
