package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

func TestReviewsOnePerConfirmedBooking(t *testing.T) {
	fp, users, accs, bookings := bookingFixture(t, 1)

	reviews, err := Reviews(fp, accs, bookings, users, 20)
	require.NoError(t, err)

	confirmed := 0
	for _, b := range bookings {
		if b.Status == dataset.BookingConfirmed {
			confirmed++
		}
	}
	require.GreaterOrEqual(t, len(reviews), confirmed)
	require.GreaterOrEqual(t, len(reviews), 20)

	byID := make(map[int]dataset.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}
	for i, r := range reviews[:confirmed] {
		assert.Equal(t, i+1, r.ID)
		assert.GreaterOrEqual(t, r.Rating, 3)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Text)
	}
}

func TestReviewsTopUpToMinimum(t *testing.T) {
	fp := fake.New(1)
	users := []dataset.User{{ID: 1, Role: dataset.RoleGuest}, {ID: 2, Role: dataset.RoleHost}}
	accs := []dataset.Accommodation{{ID: 1, HostID: 2}}
	bookings := []dataset.Booking{{
		ID: 1, GuestID: 1, AccommodationID: 1, Status: dataset.BookingConfirmed,
		CheckIn:  time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}}

	reviews, err := Reviews(fp, accs, bookings, users, 20)
	require.NoError(t, err)
	assert.Len(t, reviews, 20)
}

func TestReviewsRequireConfirmedBookings(t *testing.T) {
	fp := fake.New(1)
	users := []dataset.User{{ID: 1, Role: dataset.RoleGuest}}
	accs := []dataset.Accommodation{{ID: 1}}
	pending := []dataset.Booking{{ID: 1, Status: dataset.BookingPending}}

	_, err := Reviews(fp, accs, pending, users, 20)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestHostResponsesAtMostOnePerReview(t *testing.T) {
	fp, users, accs, bookings := bookingFixture(t, 1)
	reviews, err := Reviews(fp, accs, bookings, users, 20)
	require.NoError(t, err)

	responses, err := HostResponses(fp, reviews, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(responses), 20)

	seen := make(map[int]bool)
	validIDs := make(map[int]bool, len(reviews))
	for _, r := range reviews {
		validIDs[r.ID] = true
	}
	for _, resp := range responses {
		assert.True(t, validIDs[resp.ReviewID], "response references missing review %d", resp.ReviewID)
		assert.False(t, seen[resp.ReviewID], "review %d answered twice", resp.ReviewID)
		seen[resp.ReviewID] = true
		assert.NotEmpty(t, resp.Text)
	}
}

func TestHostResponsesRequireEnoughReviews(t *testing.T) {
	fp := fake.New(1)
	reviews := []dataset.Review{{ID: 1}, {ID: 2}}

	_, err := HostResponses(fp, reviews, 20)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
