package gen

import (
	"math"
	"time"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// ── Generation window ──

var (
	// windowStart/windowEnd bound every booking and availability day.
	windowStart = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	// cancellationFloor is the earliest permitted cancellation date.
	cancellationFloor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// ── Word pools ──

var countryPrefixes = []string{
	"New", "Old", "North", "South", "East", "West", "Great", "United", "Republic of",
}

var countrySuffixes = []string{
	"land", "stan", "ia", "nia", "lia", "rica", "esia", "dor", "ovia", "burg",
}

var citySuffixes = []string{
	"ville", "town", "burg", " City", "side", "port", "field", "bridge",
}

var propertyTypes = []string{
	"apartment", "house", "studio", "villa", "boathouse", "cabin",
}

// basePrices feeds the dynamic price formula; unknown types fall back to 50.
var basePrices = map[string]float64{
	"apartment": 50,
	"villa":     100,
	"house":     80,
	"studio":    40,
	"cabin":     60,
	"boathouse": 90,
}

var genders = []string{"Male", "Female", "Other"}

var userStatuses = []string{"active", "inactive"}

var availabilityStatuses = []string{"available", "unavailable"}

var bookingStatuses = []string{"confirmed", "cancelled", "pending"}

var bookingStatusWeights = []int{60, 20, 20}

var paymentStatuses = []string{"paid", "unpaid", "failed"}

var cancellationReasons = []string{
	"Change of travel plans",
	"Unexpected personal reasons",
	"Booking made by mistake",
	"Found a better alternative",
	"Health issues",
	"Travel restrictions",
	"Work-related obligations",
	"Accommodation reviews were concerning",
	"Budget constraints",
	"Host unresponsive or uncooperative",
}

var predefinedHouseRules = []string{
	"No smoking", "No pets allowed", "Quiet hours after 10 PM",
	"No parties or events", "Dispose of garbage properly",
	"Shoes off indoors", "No loud music", "No outside visitors",
	"Turn off lights when leaving", "No cooking after midnight",
	"Report damages immediately", "Use water sparingly",
	"Separate recyclables from trash", "No food in bedrooms",
	"Close windows when leaving", "Do not rearrange furniture",
	"Keep the front door locked", "Do not disturb neighbors",
	"No laundry after 9 PM", "Respect shared spaces",
}

var ruleActions = []string{"Avoid", "Do not", "Keep", "Ensure", "Respect", "Always"}

var ruleItems = []string{
	"noise levels", "cleanliness", "neighbor privacy", "shared spaces", "property rules",
}

var ruleDetails = []string{
	"at all times", "especially at night", "during your stay",
	"when using shared facilities", "to maintain harmony",
}

var predefinedAmenities = []string{
	"WiFi", "Air Conditioning", "Kitchen", "Parking", "Swimming Pool",
	"Gym", "Pet Friendly", "Washer/Dryer", "Hot Tub", "Heating",
	"TV", "Private Entrance", "Smoke Alarm", "Carbon Monoxide Detector",
	"Balcony", "Garden", "Fireplace", "Breakfast Included", "Beach Access",
	"Bicycle Rental",
}

var reviewSentiments = []string{
	"Excellent stay!", "Highly recommended!", "A very cozy place.",
	"Would definitely book again.", "The amenities were great.",
	"Perfect location!", "Wonderful host!", "A bit noisy but manageable.",
	"Loved the view!", "Clean and comfortable.", "A true home away from home.",
	"Met all my expectations.", "The pool was fantastic!", "Convenient and affordable.",
	"I'll be coming back for sure.", "Forever am I at work here.",
}

var bioHobbies = []string{
	"travels the world", "is a food lover", "enjoys hiking",
	"loves painting", "is a marathon runner", "plays the guitar",
	"writes poetry", "is a bookworm", "photographs wildlife",
	"dances salsa",
}

var bioProfessions = []string{
	"a software developer", "a teacher", "a chef",
	"a photographer", "an entrepreneur", "a designer",
	"a fitness trainer", "a musician", "an author",
	"a scientist",
}

var bioTraits = []string{
	"passionate", "dedicated", "creative", "ambitious",
	"curious", "outgoing", "kind-hearted", "driven",
	"optimistic", "thoughtful",
}

var bioAspirations = []string{
	"to explore new cultures", "to change the world",
	"to inspire others", "to write a best-selling novel",
	"to innovate in technology", "to create stunning art",
	"to lead a healthier life", "to start a global movement",
	"to build meaningful connections", "to learn something new every day",
}

var socialNetworkNames = []string{"Facebook", "Twitter", "Instagram", "LinkedIn"}

var socialBaseURLs = map[string]string{
	"Twitter":   "https://twitter.com",
	"Facebook":  "https://facebook.com",
	"Instagram": "https://instagram.com",
	"LinkedIn":  "https://linkedin.com/in",
}

var adminRoles = []string{"SuperAdmin", "Admin", "Moderator"}

var adminRoleWeights = []int{30, 50, 20}

var adminActionDescriptions = []string{
	"Updated user profile",
	"Moderated a review",
	"Deleted a comment",
	"Resolved a user complaint",
	"Banned a user",
	"Approved new accommodation",
	"Changed booking status",
	"Reviewed system logs",
}

var transactionTypes = []string{"Credit", "Debit"}

var transactionMethods = []string{
	"Credit Card", "Debit Card", "Bank Transfer", "PayPal", "Cryptocurrency",
}
