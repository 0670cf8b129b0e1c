package integration_test

import (
	"context"
	"errors"
	"testing"

	"artbook_backend/database"
	"artbook_backend/internal/models"
	"artbook_backend/internal/repositories"
	"artbook_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only with TEST_DATABASE_URL set.
func TestGormCatalogRepository(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewGormCatalogRepository(db)
	ctx := context.Background()

	artists, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids(database.SeedArtists()), ids(artists))
	assert.Equal(t, []string{"Jazz", "Soul", "Corporate Events"}, []string(artists[0].Specialties))

	artist, err := repo.FindArtistByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Chicago, IL", artist.Location.Label())

	_, err = repo.FindArtistByID(ctx, "404")
	assert.True(t, errors.Is(err, repositories.ErrArtistNotFound))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, models.CategoryMusicians, categories[0].ID)

	leads, err := repo.ListBookingLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, models.LeadStatusPending, leads[0].Status)

	// Seeding twice is a no-op.
	require.NoError(t, database.Seed(db))
	artists, err = repo.ListArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 6)
}
