// Package fake wraps go-faker plus a seeded random source into the single
// value provider threaded through every generator. All draws go through one
// *rand.Rand so a fixed seed reproduces a run.
package fake

import (
	mrand "math/rand"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
)

var emailProviders = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com",
}

// Provider supplies leaf-level fake values. Not safe for concurrent use;
// the pipeline is sequential by design.
type Provider struct {
	rng *mrand.Rand
}

// New returns a provider seeded for reproducible output. The faker package
// keeps its own source, so it is seeded alongside.
func New(seed int64) *Provider {
	faker.SetRandomSource(mrand.NewSource(seed))
	return &Provider{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (p *Provider) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return p.rng.Intn(n)
}

// Between returns a value in [min, max] inclusive.
func (p *Provider) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.rng.Intn(max-min+1)
}

// Float returns a value in [min, max).
func (p *Provider) Float(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}

// Chance reports true with the given percent probability.
func (p *Provider) Chance(pct int) bool {
	return p.rng.Intn(100) < pct
}

func (p *Provider) Name() string      { return faker.Name() }
func (p *Provider) FirstName() string { return faker.FirstName() }
func (p *Provider) Username() string  { return faker.Username() }
func (p *Provider) Password() string  { return faker.Password() }
func (p *Provider) URL() string       { return faker.URL() }
func (p *Provider) Word() string      { return faker.Word() }
func (p *Provider) Sentence() string  { return faker.Sentence() }

// CityName returns a plausible city name.
func (p *Provider) CityName() string {
	return faker.GetRealAddress().City
}

// Perm returns a random permutation of [0, n).
func (p *Provider) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	return p.rng.Perm(n)
}

// Email composes a local part from a fake username and one of the common
// consumer mail domains.
func (p *Provider) Email() string {
	return strings.ToLower(faker.Username()) + "@" + Pick(p, emailProviders)
}

// Phone returns a digits-only phone number.
func (p *Provider) Phone() string {
	raw := faker.Phonenumber()
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// Address returns a street address with a city.
func (p *Provider) Address() string {
	a := faker.GetRealAddress()
	return a.Address + ", " + a.City
}

// Text returns free text truncated to maxChars.
func (p *Provider) Text(maxChars int) string {
	s := faker.Paragraph()
	if maxChars > 0 && len(s) > maxChars {
		s = strings.TrimSpace(s[:maxChars])
	}
	return s
}

// DateBetween returns a UTC midnight date in [start, end] inclusive.
// When end precedes start, start is returned (callers clamp collapsed ranges).
func (p *Provider) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, p.Intn(days+1))
}

// DateThisYear returns a date between Jan 1 of the current year and today.
func (p *Provider) DateThisYear() time.Time {
	now := time.Now().UTC()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return p.DateBetween(start, midnight(now))
}

// DateThisDecade returns a date between Jan 1 of the decade and today.
func (p *Provider) DateThisDecade() time.Time {
	now := time.Now().UTC()
	start := time.Date(now.Year()-now.Year()%10, 1, 1, 0, 0, 0, 0, time.UTC)
	return p.DateBetween(start, midnight(now))
}

// DateTimeThisYear returns a timestamp between Jan 1 of the current year and
// now, at second granularity.
func (p *Provider) DateTimeThisYear() time.Time {
	now := time.Now().UTC()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	seconds := int64(now.Sub(start) / time.Second)
	return start.Add(time.Duration(p.rng.Int63n(seconds)) * time.Second)
}

// DateOfBirth returns a birth date for an age in [minAge, maxAge].
func (p *Provider) DateOfBirth(minAge, maxAge int) time.Time {
	now := time.Now().UTC()
	years := p.Between(minAge, maxAge)
	d := midnight(now).AddDate(-years, 0, -p.Intn(365))
	return d
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Sample returns up to k distinct elements drawn without replacement.
func Sample[T any](p *Provider, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	out := make([]T, 0, k)
	for _, i := range p.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// Pick returns a uniformly random element. Zero value for an empty slice.
func Pick[T any](p *Provider, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[p.Intn(len(items))]
}

// WeightedPick returns an element with probability proportional to its weight.
func WeightedPick[T any](p *Provider, items []T, weights []int) T {
	var zero T
	if len(items) == 0 || len(items) != len(weights) {
		return zero
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return items[0]
	}
	draw := p.Intn(total)
	for i, w := range weights {
		if draw < w {
			return items[i]
		}
		draw -= w
	}
	return items[len(items)-1]
}
