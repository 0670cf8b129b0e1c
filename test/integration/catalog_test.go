package integration_test

import (
	"net/http"
	"testing"

	"artbook_backend/internal/models"
	"artbook_backend/internal/services/dto"
	"artbook_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(artists []models.Artist) []string {
	out := make([]string, 0, len(artists))
	for _, a := range artists {
		out = append(out, a.ID)
	}
	return out
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	t.Run("GET /artists - filters", func(t *testing.T) {
		cases := []struct {
			query string
			want  []string
		}{
			{"", []string{"1", "2", "3", "4", "5", "6"}},
			{"?category=musicians", []string{"1"}},
			{"?search=jazz", []string{"1"}},
			{"?search=JAZZ", []string{"1"}},
			{"?location=Chicago,+IL", []string{"4"}},
			{"?price_range=over-5000", []string{"4"}},
			{"?search=corporate&price_range=3000-5000", []string{"1", "2", "5", "6"}},
			{"?category=djs&price_range=under-1000", []string{}},
		}
		for _, tc := range cases {
			res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists"+tc.query, nil)
			require.Equal(t, http.StatusOK, res.StatusCode, body)

			var resp dto.ArtistListResponse
			helpers.ParseResponse(t, body, &resp)
			assert.Equal(t, tc.want, ids(resp.Artists), tc.query)
			assert.Equal(t, len(tc.want), resp.Total, tc.query)
		}
	})

	t.Run("GET /artists - unknown bucket is rejected", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists?price_range=cheap", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var e errorBody
		helpers.ParseResponse(t, body, &e)
		assert.Equal(t, "VALIDATION_FAILED", e.Error.Code)
		assert.Contains(t, e.Error.Details, "price_range")
	})

	t.Run("GET /artists/:id", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists/3", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var artist models.Artist
		helpers.ParseResponse(t, body, &artist)
		assert.Equal(t, "3", artist.ID)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/artists/404", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		var e errorBody
		helpers.ParseResponse(t, body, &e)
		assert.Equal(t, "ARTIST_NOT_FOUND", e.Error.Code)
	})

	t.Run("GET /artists/featured", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists/featured", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var artists []models.Artist
		helpers.ParseResponse(t, body, &artists)
		assert.Equal(t, []string{"1", "2", "3"}, ids(artists))
	})

	t.Run("GET /artists/filters", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists/filters", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var opts dto.FilterOptionsResponse
		helpers.ParseResponse(t, body, &opts)
		assert.Equal(t, []string{
			"Austin, TX", "Chicago, IL", "Las Vegas, NV", "Los Angeles, CA", "Miami, FL", "New York, NY",
		}, opts.Locations)
		require.Len(t, opts.PriceRanges, 4)
		assert.Equal(t, "under-1000", string(opts.PriceRanges[0].Value))
	})

	t.Run("GET /categories", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/categories", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var categories []models.Category
		helpers.ParseResponse(t, body, &categories)
		require.Len(t, categories, 6)
		assert.Equal(t, 187, categories[5].ArtistCount)
	})
}

func TestSystemRoutes(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	res, body = ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "/api/v1/onboarding/{id}/submit")

	res, body = ts.SendRequest(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "artbook_http_requests_total")
}
