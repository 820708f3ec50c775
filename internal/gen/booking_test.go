package gen

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

func bookingFixture(t *testing.T, seed int64) (*fake.Provider, []dataset.User, []dataset.Accommodation, []dataset.Booking) {
	t.Helper()
	fp := fake.New(seed)
	users, cities, countries := testGeoFixture(t, fp)
	accs, err := Accommodations(fp, users, cities, countries, 50)
	require.NoError(t, err)
	bookings, err := Bookings(fp, users, accs, 3, 1.5)
	require.NoError(t, err)
	require.NotEmpty(t, bookings)
	return fp, users, accs, bookings
}

func TestBookingsStayInsideWindow(t *testing.T) {
	_, _, _, bookings := bookingFixture(t, 1)

	for _, b := range bookings {
		assert.False(t, b.CheckIn.Before(windowStart), "check-in before window")
		assert.False(t, b.CheckOut.After(windowEnd), "check-out after window")
		assert.True(t, b.CheckOut.After(b.CheckIn), "check-out not after check-in")
		nights := b.Nights()
		assert.GreaterOrEqual(t, nights, 1)
		assert.LessOrEqual(t, nights, maxStayNights)
	}
}

func TestBookingsRespectTotalCap(t *testing.T) {
	_, users, _, bookings := bookingFixture(t, 1)

	guests := 0
	guestSet := make(map[int]bool)
	for _, u := range users {
		if u.Role == dataset.RoleGuest {
			guests++
			guestSet[u.ID] = true
		}
	}
	assert.LessOrEqual(t, len(bookings), int(float64(guests)*1.5))

	perGuest := make(map[int]int)
	for _, b := range bookings {
		assert.True(t, guestSet[b.GuestID], "booking %d made by non-guest %d", b.ID, b.GuestID)
		perGuest[b.GuestID]++
	}
	for guest, n := range perGuest {
		assert.LessOrEqual(t, n, 3, "guest %d over the booking limit", guest)
	}
}

func TestBookingsTotalAmount(t *testing.T) {
	_, _, accs, bookings := bookingFixture(t, 1)

	priceByAcc := make(map[int]float64, len(accs))
	for _, a := range accs {
		priceByAcc[a.ID] = a.PricePerNight
	}
	for _, b := range bookings {
		base := float64(b.Nights()) * priceByAcc[b.AccommodationID]
		want := round2(base - base*b.Discount/100)
		assert.InDelta(t, want, b.TotalAmount, 0.001, "booking %d total mismatch", b.ID)
		assert.GreaterOrEqual(t, b.Discount, 0.0)
		assert.LessOrEqual(t, b.Discount, 20.0)
	}
}

func TestBookingsRequireGuestsAndAccommodations(t *testing.T) {
	fp := fake.New(1)
	hosts := []dataset.User{{ID: 1, Role: dataset.RoleHost}}

	_, err := Bookings(fp, hosts, []dataset.Accommodation{{ID: 1}}, 3, 1.5)
	assert.True(t, IsValidation(err))

	guests := []dataset.User{{ID: 1, Role: dataset.RoleGuest}}
	_, err = Bookings(fp, guests, nil, 3, 1.5)
	assert.True(t, IsValidation(err))
}

func TestPaymentsCoverPaidBookingsOnly(t *testing.T) {
	_, _, _, bookings := bookingFixture(t, 1)

	payments, err := Payments(fake.New(2), bookings)
	require.NoError(t, err)

	byID := make(map[int]dataset.Booking, len(bookings))
	paid := 0
	for _, b := range bookings {
		byID[b.ID] = b
		if b.PaymentStatus == dataset.PaymentPaid {
			paid++
		}
	}
	require.Len(t, payments, paid)

	for i, p := range payments {
		assert.Equal(t, i+1, p.ID)
		b := byID[p.BookingID]
		assert.Equal(t, dataset.PaymentPaid, b.PaymentStatus)
		assert.InDelta(t, b.TotalAmount, p.Amount, 0.001)
		assert.False(t, p.Date.Before(b.CheckIn))
		assert.False(t, p.Date.After(b.CheckOut))
	}
}

func TestPaymentsValidation(t *testing.T) {
	fp := fake.New(1)
	_, err := Payments(fp, nil)
	assert.True(t, IsValidation(err))

	unpaid := []dataset.Booking{{ID: 1, PaymentStatus: dataset.PaymentUnpaid}}
	_, err = Payments(fp, unpaid)
	assert.True(t, IsValidation(err))
}

func TestCancellationsMeetMinimum(t *testing.T) {
	fp, _, _, bookings := bookingFixture(t, 1)

	cancellations, err := Cancellations(fp, bookings, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(cancellations), 20)

	byID := make(map[int]dataset.Booking, len(bookings))
	cancelled := 0
	for _, b := range bookings {
		byID[b.ID] = b
		if b.Status == dataset.BookingCancelled {
			cancelled++
		}
	}
	covered := make(map[int]bool)
	for _, c := range cancellations {
		b := byID[c.BookingID]
		assert.True(t, c.Date.Before(b.CheckIn), "cancellation %d not before check-in", c.BookingID)
		assert.False(t, c.Date.Before(cancellationFloor))
		assert.NotEmpty(t, c.Reason)
		if b.Status == dataset.BookingCancelled {
			covered[b.ID] = true
		}
	}
	assert.Len(t, covered, cancelled, "every cancelled booking gets a record")
}

func TestCancellationClampsToFloor(t *testing.T) {
	fp := fake.New(1)
	// Check-in on the floor date leaves no room before it.
	bookings := []dataset.Booking{{
		ID:      1,
		Status:  dataset.BookingCancelled,
		CheckIn: cancellationFloor,
	}}
	cancellations, err := Cancellations(fp, bookings, 1)
	require.NoError(t, err)
	require.Len(t, cancellations, 1)
	assert.Equal(t, cancellationFloor, cancellations[0].Date)
}

func TestAvailabilityMarksConfirmedStays(t *testing.T) {
	accs := []dataset.Accommodation{{ID: 1}, {ID: 2}}
	bookings := []dataset.Booking{
		{
			ID: 1, AccommodationID: 1, Status: dataset.BookingConfirmed,
			CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, AccommodationID: 2, Status: dataset.BookingPending,
			CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	rows, err := Availability(accs, bookings)
	require.NoError(t, err)
	require.Len(t, rows, 60, "30 days for each of 2 accommodations")

	byKey := make(map[[2]string]bool)
	for _, r := range rows {
		byKey[[2]string{strconv.Itoa(r.AccommodationID), r.Date.Format("2006-01-02")}] = r.IsAvailable
	}
	// Nights of the stay are blocked, the check-out day is not.
	assert.False(t, byKey[[2]string{"1", "2024-06-10"}])
	assert.False(t, byKey[[2]string{"1", "2024-06-12"}])
	assert.True(t, byKey[[2]string{"1", "2024-06-13"}])
	assert.True(t, byKey[[2]string{"1", "2024-06-09"}])
	// Pending bookings never block availability.
	assert.True(t, byKey[[2]string{"2", "2024-06-11"}])
}

func TestCommissionTiers(t *testing.T) {
	assert.Equal(t, 0.05, CommissionRate(1200))
	assert.Equal(t, 0.10, CommissionRate(700))
	assert.Equal(t, 0.15, CommissionRate(300))
	assert.Equal(t, 0.10, CommissionRate(1000))
	assert.Equal(t, 0.15, CommissionRate(500))
}

func TestCommissionsConfirmedOnly(t *testing.T) {
	bookings := []dataset.Booking{
		{ID: 1, Status: dataset.BookingConfirmed, TotalAmount: 270},
		{ID: 2, Status: dataset.BookingPending, TotalAmount: 300},
		{ID: 3, Status: dataset.BookingConfirmed, TotalAmount: 0},
	}
	commissions, err := Commissions(bookings)
	require.NoError(t, err)
	require.Len(t, commissions, 1)
	assert.Equal(t, 1, commissions[0].BookingID)
	assert.Equal(t, 40.5, commissions[0].Amount)
}
