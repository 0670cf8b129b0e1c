package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artbook_backend/database"
	"artbook_backend/internal/algorithms"
	"artbook_backend/internal/models"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/services/dto"
	"artbook_backend/pkg/apperrors"
)

func seedCatalog() repositories.CatalogRepository {
	return repositories.NewMemoryCatalogRepository(
		database.SeedArtists(), database.SeedCategories(), database.SeedBookingLeads(),
	)
}

func artistIDs(artists []models.Artist) []string {
	out := make([]string, 0, len(artists))
	for _, a := range artists {
		out = append(out, a.ID)
	}
	return out
}

func TestArtistService_ListArtists(t *testing.T) {
	svc := NewArtistService(seedCatalog(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.ArtistListRequest
		want    []string
		filters int
	}{
		{"no filters", dto.ArtistListRequest{}, []string{"1", "2", "3", "4", "5", "6"}, 0},
		{"category", dto.ArtistListRequest{Category: "musicians"}, []string{"1"}, 1},
		{"search is case insensitive", dto.ArtistListRequest{Search: "JAZZ"}, []string{"1"}, 1},
		{"location", dto.ArtistListRequest{Location: "Austin, TX"}, []string{"6"}, 1},
		{"price", dto.ArtistListRequest{PriceRange: string(algorithms.PriceOver5000)}, []string{"4"}, 1},
		{"combined", dto.ArtistListRequest{Search: "corporate", PriceRange: string(algorithms.Price3000To5000)}, []string{"1", "2", "5", "6"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListArtists(ctx, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, artistIDs(resp.Artists))
			assert.Equal(t, len(tt.want), resp.Total)
			assert.Equal(t, tt.filters, resp.ActiveFilters)
		})
	}
}

func TestArtistService_GetArtist(t *testing.T) {
	svc := NewArtistService(seedCatalog(), nil)

	a, err := svc.GetArtist(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", a.Name)

	_, err = svc.GetArtist(context.Background(), "42")
	assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
}

func TestArtistService_FeaturedAndOptions(t *testing.T) {
	svc := NewArtistService(seedCatalog(), nil)
	ctx := context.Background()

	featured, err := svc.FeaturedArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, artistIDs(featured))

	opts, err := svc.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, opts.Categories, 6)
	assert.Equal(t, "Austin, TX", opts.Locations[0])
	assert.Len(t, opts.PriceRanges, 4)
}

func TestCategoryService_KeepsStoredCounts(t *testing.T) {
	categories, err := NewCategoryService(seedCatalog()).ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "musicians", categories[0].ID)
	assert.Equal(t, 234, categories[0].ArtistCount)
}

func TestDashboardService_ListLeads(t *testing.T) {
	svc := NewDashboardService(seedCatalog())
	ctx := context.Background()

	all, err := svc.ListLeads(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, "all", all.Status)

	pending, err := svc.ListLeads(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending.Leads, 1)
	assert.Equal(t, "John Smith", pending.Leads[0].ClientName)

	declined, err := svc.ListLeads(ctx, "declined")
	require.NoError(t, err)
	assert.Empty(t, declined.Leads)

	_, err = svc.ListLeads(ctx, "archived")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestDashboardService_Stats(t *testing.T) {
	stats, err := NewDashboardService(seedCatalog()).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardStats{
		TotalLeads:        2,
		PendingLeads:      1,
		ConfirmedBookings: 1,
		TotalRevenue:      2500,
	}, stats)
}
