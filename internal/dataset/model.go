// Package dataset holds the typed rows produced by the generation pipeline
// and the generic Table form consumed by sinks.
package dataset

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleHost  = "host"
	RoleGuest = "guest"
)

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingPending   = "pending"
)

// Payment statuses carried on bookings.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
	PaymentFailed = "failed"
)

type User struct {
	ID               int
	Name             string
	Email            string
	Password         string
	Phone            *string
	Role             string
	DateOfBirth      time.Time
	Gender           *string
	Address          string
	RegistrationDate time.Time
	LastLogin        *time.Time
	Status           string
}

type Country struct {
	ID   int
	Name string
}

type City struct {
	ID        int
	CountryID int
	Name      string
}

type Accommodation struct {
	ID                 int
	HostID             int
	Title              string
	Description        string
	Address            string
	CityID             int
	CountryID          int
	PricePerNight      float64
	AvailabilityStatus string
	PropertyType       string
	Bedrooms           int
	Bathrooms          int
	SquareFootage      int
	Neighborhood       *string
	HostRating         float64
	Rating             float64
	RegistrationDate   time.Time
	LastUpdated        time.Time
}

type Photo struct {
	ID              int
	AccommodationID int
	URL             string
}

type HouseRule struct {
	ID          int
	Description string
}

type AccommodationHouseRule struct {
	AccommodationID int
	HouseRuleID     int
}

type Amenity struct {
	ID   int
	Name string
}

type AccommodationAmenity struct {
	ID              int
	AccommodationID int
	AmenityID       int
}

type Booking struct {
	ID              int
	GuestID         int
	AccommodationID int
	CheckIn         time.Time
	CheckOut        time.Time
	TotalAmount     float64
	Status          string
	Discount        float64
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Nights is the stay length in whole days.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

type Payment struct {
	ID        int
	BookingID int
	Date      time.Time
	Amount    float64
}

type Cancellation struct {
	BookingID int
	Date      time.Time
	Reason    string
}

type Availability struct {
	AccommodationID int
	Date            time.Time
	IsAvailable     bool
}

type Price struct {
	ID              int
	AccommodationID int
	Amount          float64
}

type SocialNetwork struct {
	UserID     int
	Network    string
	ProfileURL string
}

type Profile struct {
	ID         int
	UserID     int
	Bio        string
	PictureURL string
	SocialLink string
}

type Message struct {
	ID         int
	SenderID   int
	ReceiverID int
	Content    string
	Date       time.Time
}

type Review struct {
	ID              int
	AccommodationID int
	UserID          int
	Text            string
	Rating          int
	Date            time.Time
}

type HostResponse struct {
	ReviewID int
	Text     string
}

type Commission struct {
	BookingID int
	Amount    float64
}

type Admin struct {
	ID     int
	UserID int
	Role   string
}

type AdminAction struct {
	ID          int
	AdminID     int
	Description string
	Date        time.Time
}

type Transaction struct {
	ID        int
	PaymentID int
	Date      time.Time
	Type      string
	Amount    float64
	Method    string
	Reference string
}

type Notification struct {
	UserID  int
	Message string
	Date    time.Time
}
