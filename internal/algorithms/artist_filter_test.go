package algorithms

import (
	"testing"

	"artbook_backend/database"
	"artbook_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func artistWithMaxFee(id string, max int) models.Artist {
	return models.Artist{
		ID:       id,
		Name:     "Artist " + id,
		FeeRange: models.FeeRange{Min: 0, Max: max},
	}
}

func ids(artists []models.Artist) []string {
	out := make([]string, 0, len(artists))
	for _, a := range artists {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterArtists_SeedScenarios(t *testing.T) {
	artists := database.SeedArtists()
	require.Len(t, artists, 6)

	t.Run("no filters returns everything in order", func(t *testing.T) {
		got := FilterArtists(artists, ArtistFilter{})
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(got))
	})

	t.Run("category musicians", func(t *testing.T) {
		got := FilterArtists(artists, ArtistFilter{Category: "musicians"})
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("search is case-insensitive on specialties", func(t *testing.T) {
		for _, term := range []string{"jazz", "JAZZ", "JaZz"} {
			got := FilterArtists(artists, ArtistFilter{Search: term})
			assert.Equal(t, []string{"1"}, ids(got), "term %q", term)
		}
	})

	t.Run("search matches name and bio", func(t *testing.T) {
		assert.Equal(t, []string{"6"}, ids(FilterArtists(artists, ArtistFilter{Search: "pulse"})))
		assert.Equal(t, []string{"4"}, ids(FilterArtists(artists, ArtistFilter{Search: "tedx"})))
	})

	t.Run("location uses the composed city, state label", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, ids(FilterArtists(artists, ArtistFilter{Location: "Miami, FL"})))
		assert.Empty(t, FilterArtists(artists, ArtistFilter{Location: "Miami"}))
	})

	t.Run("price buckets over the seed", func(t *testing.T) {
		assert.Empty(t, FilterArtists(artists, ArtistFilter{PriceRange: PriceUnder1000}))
		assert.Equal(t, []string{"3", "5"}, ids(FilterArtists(artists, ArtistFilter{PriceRange: Price1000To3000})))
		assert.Equal(t, []string{"1", "2", "5", "6"}, ids(FilterArtists(artists, ArtistFilter{PriceRange: Price3000To5000})))
		assert.Equal(t, []string{"4"}, ids(FilterArtists(artists, ArtistFilter{PriceRange: PriceOver5000})))
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		f := ArtistFilter{Search: "corporate", PriceRange: Price3000To5000}
		assert.Equal(t, []string{"1", "2", "5", "6"}, ids(FilterArtists(artists, f)))

		f.Category = "djs"
		assert.Equal(t, []string{"6"}, ids(FilterArtists(artists, f)))

		f.Location = "Chicago, IL"
		assert.Empty(t, FilterArtists(artists, f))
	})
}

func TestPriceBucket_Boundaries(t *testing.T) {
	cases := []struct {
		max  int
		want map[PriceBucket]bool
	}{
		{999, map[PriceBucket]bool{PriceUnder1000: true, Price1000To3000: false, Price3000To5000: false, PriceOver5000: false}},
		{1000, map[PriceBucket]bool{PriceUnder1000: false, Price1000To3000: true, Price3000To5000: false, PriceOver5000: false}},
		{3000, map[PriceBucket]bool{PriceUnder1000: false, Price1000To3000: true, Price3000To5000: true, PriceOver5000: false}},
		{5000, map[PriceBucket]bool{PriceUnder1000: false, Price1000To3000: false, Price3000To5000: true, PriceOver5000: false}},
		{5001, map[PriceBucket]bool{PriceUnder1000: false, Price1000To3000: false, Price3000To5000: false, PriceOver5000: true}},
	}

	for _, tc := range cases {
		for bucket, want := range tc.want {
			assert.Equal(t, want, bucket.Contains(tc.max), "max=%d bucket=%s", tc.max, bucket)
		}
	}
}

func TestPriceBucket_MaxFee1000PassesLowerMiddleBucket(t *testing.T) {
	artists := []models.Artist{artistWithMaxFee("a", 1000)}
	got := FilterArtists(artists, ArtistFilter{PriceRange: Price1000To3000})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestPriceBucket_UnknownIsUnconstrained(t *testing.T) {
	assert.False(t, PriceBucket("cheap").IsValid())
	assert.True(t, PriceBucket("cheap").Contains(10))
	assert.True(t, PriceBucket("cheap").Contains(100000))
}

func TestFilterArtists_SubsetOrderAndPartition(t *testing.T) {
	artists := database.SeedArtists()
	filters := []ArtistFilter{
		{},
		{Search: "corporate"},
		{Search: "e", PriceRange: Price1000To3000},
		{Category: "comedians", Location: "Los Angeles, CA"},
		{PriceRange: Price3000To5000, Search: "wedding"},
		{Search: "no such artist anywhere"},
	}

	for _, f := range filters {
		got := FilterArtists(artists, f)

		// Subset preserving relative order.
		pos := 0
		for _, a := range got {
			for pos < len(artists) && artists[pos].ID != a.ID {
				pos++
			}
			require.Less(t, pos, len(artists), "result %s out of order or not in input", a.ID)
			pos++
		}

		// Members pass, non-members fail.
		in := make(map[string]bool, len(got))
		for _, a := range got {
			in[a.ID] = true
		}
		for i := range artists {
			assert.Equal(t, in[artists[i].ID], f.Matches(&artists[i]), "artist %s filter %+v", artists[i].ID, f)
		}

		// Idempotence.
		assert.Equal(t, ids(got), ids(FilterArtists(got, f)))
	}
}

func TestFilterArtists_DoesNotMutateInput(t *testing.T) {
	artists := database.SeedArtists()
	before := ids(artists)

	got := FilterArtists(artists, ArtistFilter{Category: "djs"})
	require.Len(t, got, 1)
	got[0].Name = "changed"

	assert.Equal(t, before, ids(artists))
	assert.Equal(t, "DJ Pulse", artists[5].Name)
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(ArtistFilter{}))
	assert.Equal(t, 2, ActiveFilterCount(ArtistFilter{Search: "x", PriceRange: PriceOver5000}))
	assert.Equal(t, 4, ActiveFilterCount(ArtistFilter{Search: "x", Category: "djs", Location: "Austin, TX", PriceRange: PriceOver5000}))
}

func TestLocationsAndFeatured(t *testing.T) {
	artists := database.SeedArtists()
	assert.Equal(t, []string{
		"Austin, TX", "Chicago, IL", "Las Vegas, NV", "Los Angeles, CA", "Miami, FL", "New York, NY",
	}, Locations(artists))

	assert.Equal(t, []string{"1", "2", "3"}, ids(Featured(artists, FeaturedCount)))
	assert.Len(t, Featured(artists, 10), 6)
	assert.Empty(t, Featured(artists, 0))
}
