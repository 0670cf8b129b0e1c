package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artbook_backend/database"
	"artbook_backend/internal/validator"
	"artbook_backend/internal/wizard"
)

func newCatalog() CatalogRepository {
	return NewMemoryCatalogRepository(database.SeedArtists(), database.SeedCategories(), database.SeedBookingLeads())
}

func TestMemoryCatalog_ListArtistsInSeedOrder(t *testing.T) {
	artists, err := newCatalog().ListArtists(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 6)
	for i, a := range artists {
		assert.Equal(t, database.SeedArtists()[i].ID, a.ID)
	}
}

func TestMemoryCatalog_ListReturnsCopies(t *testing.T) {
	repo := newCatalog()
	ctx := context.Background()

	artists, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	artists[0].Name = "changed"
	artists[0].Specialties[0] = "changed"

	again, err := repo.ListArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", again[0].Name)
	assert.Equal(t, "Jazz", again[0].Specialties[0])
}

func TestMemoryCatalog_FindArtistByID(t *testing.T) {
	repo := newCatalog()

	a, err := repo.FindArtistByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Comedy Central Mike", a.Name)

	_, err = repo.FindArtistByID(context.Background(), "99")
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestMemoryCatalog_CategoriesAndLeads(t *testing.T) {
	repo := newCatalog()

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, 234, categories[0].ArtistCount)

	leads, err := repo.ListBookingLeads(context.Background())
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func newApplication(id string) *Application {
	return &Application{ID: id, Wizard: wizard.New(validator.New())}
}

func TestMemoryApplications_Lifecycle(t *testing.T) {
	repo := NewMemoryApplicationRepository()

	require.NoError(t, repo.Create(newApplication("a")))
	assert.Equal(t, 1, repo.Count())

	err := repo.Update("a", func(app *Application) error {
		return app.Wizard.ToggleLanguage("English", true)
	})
	require.NoError(t, err)

	require.NoError(t, repo.View("a", func(app *Application) {
		assert.Equal(t, []string{"English"}, app.Wizard.Form().Languages)
	}))

	require.NoError(t, repo.Delete("a"))
	assert.ErrorIs(t, repo.Delete("a"), ErrApplicationNotFound)
	assert.ErrorIs(t, repo.View("a", func(*Application) {}), ErrApplicationNotFound)
}

func TestMemoryApplications_UpdateErrorPropagates(t *testing.T) {
	repo := NewMemoryApplicationRepository()
	require.NoError(t, repo.Create(newApplication("a")))

	boom := errors.New("boom")
	err := repo.Update("a", func(*Application) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Update("missing", func(*Application) error { return nil }), ErrApplicationNotFound)
}

func TestMemoryApplications_DeleteIdleSince(t *testing.T) {
	repo := NewMemoryApplicationRepository().(*MemoryApplicationRepository)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Create(newApplication("old")))
	now = now.Add(time.Hour)
	require.NoError(t, repo.Create(newApplication("fresh")))

	removed := repo.DeleteIdleSince(now.Add(-30 * time.Minute))
	assert.Equal(t, []string{"old"}, removed)
	assert.Equal(t, 1, repo.Count())
}
