package gen

import (
	"time"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

const maxStayNights = 7

// Bookings simulates guest booking activity inside the generation window.
// Each guest attempts up to maxPerGuest bookings, each accepted with 70%
// probability, and the table is capped at guests times multiplier.
func Bookings(fp *fake.Provider, users []dataset.User, accs []dataset.Accommodation, maxPerGuest int, multiplier float64) ([]dataset.Booking, error) {
	guests := guestIDs(users)
	if len(guests) == 0 {
		return nil, validationf("no guests found, cannot create bookings")
	}
	if len(accs) == 0 {
		return nil, validationf("no accommodations found, cannot create bookings")
	}

	maxTotal := int(float64(len(guests)) * multiplier)
	now := time.Now().UTC()

	var bookings []dataset.Booking
	bookingID := 1
	for _, guestID := range guests {
		attempts := fp.Between(1, maxPerGuest)
		for i := 0; i < attempts; i++ {
			if len(bookings) >= maxTotal {
				break
			}
			if !fp.Chance(70) {
				continue
			}

			acc := fake.Pick(fp, accs)
			checkIn := fp.DateBetween(windowStart, windowEnd)
			maxOut := checkIn.AddDate(0, 0, maxStayNights)
			if maxOut.After(windowEnd) {
				maxOut = windowEnd
			}
			if !maxOut.After(checkIn) {
				continue
			}
			checkOut := fp.DateBetween(checkIn.AddDate(0, 0, 1), maxOut)

			nights := int(checkOut.Sub(checkIn).Hours() / 24)
			base := float64(nights) * acc.PricePerNight
			var discount float64
			if fp.Chance(80) {
				discount = round2(fp.Float(0, 20))
			}
			total := round2(base - base*discount/100)

			bookings = append(bookings, dataset.Booking{
				ID:              bookingID,
				GuestID:         guestID,
				AccommodationID: acc.ID,
				CheckIn:         checkIn,
				CheckOut:        checkOut,
				TotalAmount:     total,
				Status:          fake.WeightedPick(fp, bookingStatuses, bookingStatusWeights),
				Discount:        discount,
				PaymentStatus:   fake.Pick(fp, paymentStatuses),
				CreatedAt:       now,
				UpdatedAt:       now,
			})
			bookingID++
		}
	}
	return bookings, nil
}

// Payments creates one payment per paid booking, dated inside the stay.
func Payments(fp *fake.Provider, bookings []dataset.Booking) ([]dataset.Payment, error) {
	if len(bookings) == 0 {
		return nil, validationf("bookings table is empty, cannot generate payments")
	}

	var payments []dataset.Payment
	for _, b := range bookings {
		if b.PaymentStatus != dataset.PaymentPaid {
			continue
		}
		payments = append(payments, dataset.Payment{
			ID:        len(payments) + 1,
			BookingID: b.ID,
			Date:      fp.DateBetween(b.CheckIn, b.CheckOut),
			Amount:    round2(b.TotalAmount),
		})
	}
	if len(payments) == 0 {
		return nil, validationf("no paid bookings found, cannot generate payments")
	}
	return payments, nil
}

// Cancellations records every cancelled booking and tops up with random
// non-cancelled bookings until the minimum is met. Cancellation dates
// always precede check-in; when check-in leaves no room the floor date is
// used as-is.
func Cancellations(fp *fake.Provider, bookings []dataset.Booking, min int) ([]dataset.Cancellation, error) {
	if len(bookings) == 0 {
		return nil, validationf("bookings table is empty, cannot generate cancellations")
	}

	var cancelled, eligible []dataset.Booking
	for _, b := range bookings {
		if b.Status == dataset.BookingCancelled {
			cancelled = append(cancelled, b)
		} else {
			eligible = append(eligible, b)
		}
	}
	if len(cancelled) < min {
		cancelled = append(cancelled, fake.Sample(fp, eligible, min-len(cancelled))...)
	}

	cancellations := make([]dataset.Cancellation, 0, len(cancelled))
	for _, b := range cancelled {
		end := b.CheckIn.AddDate(0, 0, -1)
		date := cancellationFloor
		if end.After(cancellationFloor) {
			date = fp.DateBetween(cancellationFloor, end)
		}
		cancellations = append(cancellations, dataset.Cancellation{
			BookingID: b.ID,
			Date:      date,
			Reason:    fake.Pick(fp, cancellationReasons),
		})
	}
	return cancellations, nil
}

// Availability emits one row per accommodation per day of the window. A
// day is unavailable when it falls inside a confirmed booking's stay;
// the check-out day itself stays available.
func Availability(accs []dataset.Accommodation, bookings []dataset.Booking) ([]dataset.Availability, error) {
	if len(accs) == 0 {
		return nil, validationf("accommodations table is empty, cannot generate availability")
	}
	if len(bookings) == 0 {
		return nil, validationf("bookings table is empty, cannot generate availability")
	}

	confirmed := make(map[int][]dataset.Booking)
	for _, b := range bookings {
		if b.Status == dataset.BookingConfirmed {
			confirmed[b.AccommodationID] = append(confirmed[b.AccommodationID], b)
		}
	}

	days := int(windowEnd.Sub(windowStart).Hours()/24) + 1
	rows := make([]dataset.Availability, 0, len(accs)*days)
	for _, a := range accs {
		for i := 0; i < days; i++ {
			day := windowStart.AddDate(0, 0, i)
			available := true
			for _, b := range confirmed[a.ID] {
				if !day.Before(b.CheckIn) && day.Before(b.CheckOut) {
					available = false
					break
				}
			}
			rows = append(rows, dataset.Availability{
				AccommodationID: a.ID,
				Date:            day,
				IsAvailable:     available,
			})
		}
	}
	return rows, nil
}

// Commissions charges every confirmed booking with a positive amount a
// tiered platform fee.
func Commissions(bookings []dataset.Booking) ([]dataset.Commission, error) {
	if len(bookings) == 0 {
		return nil, validationf("bookings table is empty, cannot generate commissions")
	}

	var commissions []dataset.Commission
	for _, b := range bookings {
		if b.Status != dataset.BookingConfirmed || b.TotalAmount <= 0 {
			continue
		}
		commissions = append(commissions, dataset.Commission{
			BookingID: b.ID,
			Amount:    round2(b.TotalAmount * CommissionRate(b.TotalAmount)),
		})
	}
	return commissions, nil
}

// CommissionRate returns the platform's cut for a booking total: 5%
// above 1000, 10% above 500, 15% otherwise.
func CommissionRate(total float64) float64 {
	switch {
	case total > 1000:
		return 0.05
	case total > 500:
		return 0.10
	default:
		return 0.15
	}
}

func guestIDs(users []dataset.User) []int {
	var ids []int
	for _, u := range users {
		if u.Role == dataset.RoleGuest {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
