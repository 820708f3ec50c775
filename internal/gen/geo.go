package gen

import (
	"staygen/internal/dataset"
	"staygen/internal/fake"
)

const (
	defaultCountries    = 20
	minCitiesPerCountry = 3
)

// Countries generates fictional country names from prefix/suffix pools.
// Names are not deduplicated; collisions are harmless.
func Countries(fp *fake.Provider, num int) []dataset.Country {
	if num <= 0 {
		num = defaultCountries
	}
	countries := make([]dataset.Country, 0, num)
	for i := 1; i <= num; i++ {
		countries = append(countries, dataset.Country{
			ID:   i,
			Name: fake.Pick(fp, countryPrefixes) + " " + fake.Pick(fp, countrySuffixes),
		})
	}
	return countries
}

// Cities assigns at least three cities to every country, then spreads any
// surplus over random countries. A requested total below the per-country
// floor is raised to it.
func Cities(fp *fake.Provider, countries []dataset.Country, requested int) ([]dataset.City, error) {
	if len(countries) == 0 {
		return nil, validationf("no countries found, cannot populate cities")
	}

	counts := Distribute(fp, len(countries), requested, minCitiesPerCountry)

	var cities []dataset.City
	cityID := 1
	for i, country := range countries {
		for n := 0; n < counts[i]; n++ {
			cities = append(cities, dataset.City{
				ID:        cityID,
				CountryID: country.ID,
				Name:      fp.FirstName() + fake.Pick(fp, citySuffixes),
			})
			cityID++
		}
	}
	return cities, nil
}
