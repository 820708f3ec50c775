package dataset

// Dataset accumulates every generated table. The pipeline threads a single
// instance through the generators in dependency order; nothing is mutated
// after its generator has run.
type Dataset struct {
	Countries               []Country
	HouseRules              []HouseRule
	Amenities               []Amenity
	Cities                  []City
	Users                   []User
	Accommodations          []Accommodation
	Photos                  []Photo
	AccommodationHouseRules []AccommodationHouseRule
	AccommodationAmenities  []AccommodationAmenity
	Bookings                []Booking
	Payments                []Payment
	Cancellations           []Cancellation
	Availability            []Availability
	Prices                  []Price
	SocialNetworks          []SocialNetwork
	Profiles                []Profile
	Messages                []Message
	Reviews                 []Review
	HostResponses           []HostResponse
	Commissions             []Commission
	Admins                  []Admin
	AdminActions            []AdminAction
	Transactions            []Transaction
	Notifications           []Notification
}

// UsersByRole returns the users holding the given role, in id order.
func (d *Dataset) UsersByRole(role string) []User {
	var out []User
	for _, u := range d.Users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// UserIDsByRole returns the ids of users holding the given role.
func (d *Dataset) UserIDsByRole(role string) []int {
	var out []int
	for _, u := range d.Users {
		if u.Role == role {
			out = append(out, u.ID)
		}
	}
	return out
}

// ConfirmedBookings returns the bookings with confirmed status.
func (d *Dataset) ConfirmedBookings() []Booking {
	var out []Booking
	for _, b := range d.Bookings {
		if b.Status == BookingConfirmed {
			out = append(out, b)
		}
	}
	return out
}

// AccommodationIDs returns every accommodation id in generation order.
func (d *Dataset) AccommodationIDs() []int {
	out := make([]int, len(d.Accommodations))
	for i, a := range d.Accommodations {
		out[i] = a.ID
	}
	return out
}
