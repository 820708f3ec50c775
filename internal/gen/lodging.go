package gen

import (
	"fmt"
	"strings"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

const maxPhotosPerAccommodation = 10

// Accommodations generates listings owned by host users. Every listing
// references a valid host, city and country.
func Accommodations(fp *fake.Provider, users []dataset.User, cities []dataset.City, countries []dataset.Country, num int) ([]dataset.Accommodation, error) {
	hosts := hostIDs(users)
	if len(hosts) == 0 {
		return nil, validationf("no valid hosts found, cannot populate accommodations")
	}
	if len(cities) == 0 || len(countries) == 0 {
		return nil, validationf("city or country table is empty, cannot assign location")
	}

	accs := make([]dataset.Accommodation, 0, num)
	for id := 1; id <= num; id++ {
		a := dataset.Accommodation{
			ID:                 id,
			HostID:             fake.Pick(fp, hosts),
			Title:              fmt.Sprintf("Accommodation %d", id),
			Description:        fp.Text(200),
			Address:            fp.Address(),
			CityID:             fake.Pick(fp, cities).ID,
			CountryID:          fake.Pick(fp, countries).ID,
			PricePerNight:      round2(fp.Float(50, 500)),
			AvailabilityStatus: fake.Pick(fp, availabilityStatuses),
			PropertyType:       fake.Pick(fp, propertyTypes),
			Bedrooms:           fp.Between(1, 5),
			Bathrooms:          fp.Between(1, 3),
			SquareFootage:      fp.Between(300, 3000),
			HostRating:         round1(fp.Float(2.5, 5.0)),
			Rating:             round1(fp.Float(2.5, 5.0)),
			RegistrationDate:   fp.DateThisDecade(),
			LastUpdated:        fp.DateTimeThisYear(),
		}
		if fp.Chance(70) {
			hood := fp.CityName()
			a.Neighborhood = &hood
		}
		accs = append(accs, a)
	}
	return accs, nil
}

// Photos attaches between one and ten photos to each accommodation until
// the total budget runs out, then tops up random accommodations so the
// budget is spent exactly.
func Photos(fp *fake.Provider, accs []dataset.Accommodation, total int) ([]dataset.Photo, error) {
	if len(accs) == 0 {
		return nil, validationf("accommodations table is empty, cannot generate photos")
	}

	photos := make([]dataset.Photo, 0, total)
	remaining := total
	photoID := 1

	add := func(accID int) {
		photos = append(photos, dataset.Photo{
			ID:              photoID,
			AccommodationID: accID,
			URL:             fmt.Sprintf("https://images.staygen.dev/accommodations/%d/%d.jpg", accID, photoID),
		})
		photoID++
		remaining--
	}

	for _, a := range accs {
		if remaining <= 0 {
			break
		}
		limit := maxPhotosPerAccommodation
		if remaining < limit {
			limit = remaining
		}
		n := fp.Between(1, limit)
		for i := 0; i < n; i++ {
			add(a.ID)
		}
	}
	for remaining > 0 {
		add(fake.Pick(fp, accs).ID)
	}
	return photos, nil
}

// HouseRules returns the predefined rule set, padded with composed rules
// until the minimum is met. Composed rules are deduplicated.
func HouseRules(fp *fake.Provider, min int) []dataset.HouseRule {
	descriptions := append([]string(nil), predefinedHouseRules...)
	seen := make(map[string]bool, len(descriptions))
	for _, d := range descriptions {
		seen[d] = true
	}
	for len(descriptions) < min {
		rule := fake.Pick(fp, ruleActions) + " " + fake.Pick(fp, ruleItems) + " " + fake.Pick(fp, ruleDetails)
		if !seen[rule] {
			seen[rule] = true
			descriptions = append(descriptions, rule)
		}
	}

	rules := make([]dataset.HouseRule, len(descriptions))
	for i, d := range descriptions {
		rules[i] = dataset.HouseRule{ID: i + 1, Description: d}
	}
	return rules
}

// Amenities returns the predefined amenity set, padded with generated
// "<Word> Facility" names until the minimum is met.
func Amenities(fp *fake.Provider, min int) []dataset.Amenity {
	names := append([]string(nil), predefinedAmenities...)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for len(names) < min {
		name := capitalize(fp.Word()) + " Facility"
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	amenities := make([]dataset.Amenity, len(names))
	for i, n := range names {
		amenities[i] = dataset.Amenity{ID: i + 1, Name: n}
	}
	return amenities
}

// AccommodationHouseRules links accommodations to house rules, covering
// every accommodation before topping up with random unique pairs.
func AccommodationHouseRules(fp *fake.Provider, accs []dataset.Accommodation, rules []dataset.HouseRule, total int) ([]dataset.AccommodationHouseRule, error) {
	if len(accs) == 0 || len(rules) == 0 {
		return nil, validationf("no accommodations or house rules found, cannot populate links")
	}

	pairs := LinkPairs(fp, accommodationIDList(accs), houseRuleIDs(rules), total)
	links := make([]dataset.AccommodationHouseRule, len(pairs))
	for i, p := range pairs {
		links[i] = dataset.AccommodationHouseRule{AccommodationID: p.ParentID, HouseRuleID: p.ChildID}
	}
	return links, nil
}

// AccommodationAmenities links accommodations to amenities the same way,
// with a surrogate id per link row.
func AccommodationAmenities(fp *fake.Provider, accs []dataset.Accommodation, amenities []dataset.Amenity, total int) ([]dataset.AccommodationAmenity, error) {
	if len(accs) == 0 || len(amenities) == 0 {
		return nil, validationf("no accommodations or amenities found, cannot populate links")
	}

	pairs := LinkPairs(fp, accommodationIDList(accs), amenityIDs(amenities), total)
	links := make([]dataset.AccommodationAmenity, len(pairs))
	for i, p := range pairs {
		links[i] = dataset.AccommodationAmenity{ID: i + 1, AccommodationID: p.ParentID, AmenityID: p.ChildID}
	}
	return links, nil
}

// Prices derives a dynamic nightly price for every accommodation.
func Prices(accs []dataset.Accommodation) ([]dataset.Price, error) {
	if len(accs) == 0 {
		return nil, validationf("accommodations table is empty, cannot generate prices")
	}

	prices := make([]dataset.Price, len(accs))
	for i, a := range accs {
		prices[i] = dataset.Price{
			ID:              i + 1,
			AccommodationID: a.ID,
			Amount:          DynamicPrice(a.PropertyType, a.SquareFootage, a.HostRating),
		}
	}
	return prices, nil
}

// DynamicPrice computes a nightly rate from the property type's base
// price scaled by size and host reputation, clamped to [50, 1000].
func DynamicPrice(propertyType string, squareFootage int, hostRating float64) float64 {
	base, ok := basePrices[strings.ToLower(propertyType)]
	if !ok {
		base = 50
	}
	modifier := float64(squareFootage)/1000 + hostRating/5
	price := round2(base * modifier)
	if price < 50 {
		return 50
	}
	if price > 1000 {
		return 1000
	}
	return price
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hostIDs(users []dataset.User) []int {
	var ids []int
	for _, u := range users {
		if u.Role == dataset.RoleHost {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func accommodationIDList(accs []dataset.Accommodation) []int {
	ids := make([]int, len(accs))
	for i, a := range accs {
		ids[i] = a.ID
	}
	return ids
}

func houseRuleIDs(rules []dataset.HouseRule) []int {
	ids := make([]int, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return ids
}

func amenityIDs(amenities []dataset.Amenity) []int {
	ids := make([]int, len(amenities))
	for i, a := range amenities {
		ids[i] = a.ID
	}
	return ids
}
