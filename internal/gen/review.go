package gen

import (
	"time"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

// Reviews generates one review per confirmed booking, written by the
// booking's guest about the booked accommodation. When confirmed
// bookings fall short of the minimum, extra reviews pair random users
// with random accommodations.
func Reviews(fp *fake.Provider, accs []dataset.Accommodation, bookings []dataset.Booking, users []dataset.User, min int) ([]dataset.Review, error) {
	if len(accs) == 0 {
		return nil, validationf("accommodations table is empty, cannot populate reviews")
	}
	if len(bookings) == 0 {
		return nil, validationf("bookings table is empty, cannot populate reviews")
	}
	if len(users) == 0 {
		return nil, validationf("users table is empty, cannot populate reviews")
	}

	today := midnightUTC(time.Now())

	var reviews []dataset.Review
	for _, b := range bookings {
		if b.Status != dataset.BookingConfirmed {
			continue
		}
		reviews = append(reviews, dataset.Review{
			ID:              len(reviews) + 1,
			AccommodationID: b.AccommodationID,
			UserID:          b.GuestID,
			Text:            fake.Pick(fp, reviewSentiments),
			Rating:          fp.Between(3, 5),
			Date:            fp.DateBetween(b.CheckIn, today),
		})
	}
	if len(reviews) == 0 {
		return nil, validationf("no confirmed bookings found, reviews cannot be generated")
	}

	for len(reviews) < min {
		reviews = append(reviews, dataset.Review{
			ID:              len(reviews) + 1,
			AccommodationID: fake.Pick(fp, accs).ID,
			UserID:          fake.Pick(fp, users).ID,
			Text:            fake.Pick(fp, reviewSentiments),
			Rating:          fp.Between(3, 5),
			Date:            fp.DateBetween(today.AddDate(-2, 0, 0), today),
		})
	}
	return reviews, nil
}

// HostResponses answers half the reviews at random, then tops up from
// the still unanswered reviews until the minimum is met. A review never
// receives more than one response.
func HostResponses(fp *fake.Provider, reviews []dataset.Review, min int) ([]dataset.HostResponse, error) {
	if len(reviews) == 0 {
		return nil, validationf("reviews table is empty, cannot populate host responses")
	}
	if len(reviews) < min {
		return nil, validationf("insufficient reviews (%d) for the required minimum of %d host responses", len(reviews), min)
	}

	var responses []dataset.HostResponse
	responded := make(map[int]bool)
	for _, r := range reviews {
		if fp.Chance(50) {
			responded[r.ID] = true
			responses = append(responses, dataset.HostResponse{
				ReviewID: r.ID,
				Text:     fp.Text(200),
			})
		}
	}

	if missing := min - len(responses); missing > 0 {
		var unanswered []int
		for _, r := range reviews {
			if !responded[r.ID] {
				unanswered = append(unanswered, r.ID)
			}
		}
		for _, id := range fake.Sample(fp, unanswered, missing) {
			responses = append(responses, dataset.HostResponse{
				ReviewID: id,
				Text:     fp.Text(200),
			})
		}
	}
	return responses, nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
