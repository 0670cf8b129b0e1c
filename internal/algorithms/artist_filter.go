package algorithms

import (
	"sort"
	"strings"

	"artbook_backend/internal/models"
)

// PriceBucket - a coarse range over an artist's maximum fee.
type PriceBucket string

const (
	PriceUnder1000  PriceBucket = "under-1000"
	Price1000To3000 PriceBucket = "1000-3000"
	Price3000To5000 PriceBucket = "3000-5000"
	PriceOver5000   PriceBucket = "over-5000"
)

// FeaturedCount is how many artists the home page features.
const FeaturedCount = 3

// PriceBucketOption is a bucket with its display label.
type PriceBucketOption struct {
	Value PriceBucket `json:"value"`
	Label string      `json:"label"`
}

var priceBucketOptions = []PriceBucketOption{
	{Value: PriceUnder1000, Label: "Under $1,000"},
	{Value: Price1000To3000, Label: "$1,000 - $3,000"},
	{Value: Price3000To5000, Label: "$3,000 - $5,000"},
	{Value: PriceOver5000, Label: "Over $5,000"},
}

// PriceBuckets returns the buckets in display order.
func PriceBuckets() []PriceBucketOption {
	return append([]PriceBucketOption(nil), priceBucketOptions...)
}

func (b PriceBucket) IsValid() bool {
	switch b {
	case PriceUnder1000, Price1000To3000, Price3000To5000, PriceOver5000:
		return true
	default:
		return false
	}
}

// Contains evaluates the bucket against a maximum fee. The middle buckets
// are closed on both ends, so 3000 falls in both of them.
// An unknown bucket constrains nothing.
func (b PriceBucket) Contains(maxFee int) bool {
	switch b {
	case PriceUnder1000:
		return maxFee < 1000
	case Price1000To3000:
		return maxFee >= 1000 && maxFee <= 3000
	case Price3000To5000:
		return maxFee >= 3000 && maxFee <= 5000
	case PriceOver5000:
		return maxFee > 5000
	default:
		return true
	}
}

// ArtistFilter holds the listing page inputs. Empty fields are unconstrained.
type ArtistFilter struct {
	Search     string
	Category   string
	Location   string
	PriceRange PriceBucket
}

// ActiveFilterCount returns how many inputs are set.
func ActiveFilterCount(f ArtistFilter) int {
	n := 0
	for _, v := range []string{f.Search, f.Category, f.Location, string(f.PriceRange)} {
		if v != "" {
			n++
		}
	}
	return n
}

// Matches reports whether a passes every active predicate.
func (f ArtistFilter) Matches(a *models.Artist) bool {
	if f.Search != "" && !matchesSearch(a, strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.Location != "" && a.Location.Label() != f.Location {
		return false
	}
	if f.PriceRange != "" && !f.PriceRange.Contains(a.FeeRange.Max) {
		return false
	}
	return true
}

func matchesSearch(a *models.Artist, term string) bool {
	if strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.Bio), term) {
		return true
	}
	for _, specialty := range a.Specialties {
		if strings.Contains(strings.ToLower(specialty), term) {
			return true
		}
	}
	return false
}

// FilterArtists returns, in their original order, the artists that pass f.
// The input is re-evaluated in full and never modified.
func FilterArtists(artists []models.Artist, f ArtistFilter) []models.Artist {
	out := make([]models.Artist, 0, len(artists))
	for i := range artists {
		if f.Matches(&artists[i]) {
			out = append(out, artists[i])
		}
	}
	return out
}

// Locations returns the distinct "city, state" labels, sorted.
func Locations(artists []models.Artist) []string {
	seen := make(map[string]struct{}, len(artists))
	out := make([]string, 0, len(artists))
	for i := range artists {
		label := artists[i].Location.Label()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Featured returns the first n artists in catalog order.
func Featured(artists []models.Artist, n int) []models.Artist {
	if n > len(artists) {
		n = len(artists)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Artist, n)
	copy(out, artists[:n])
	return out
}
