package repositories

import (
	"context"
	"errors"

	"artbook_backend/internal/models"
)

var (
	ErrArtistNotFound      = errors.New("artist not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// CatalogRepository serves the read-only catalog: artists, categories and
// booking leads. Lists come back in catalog order and are safe to modify.
type CatalogRepository interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	FindArtistByID(ctx context.Context, id string) (*models.Artist, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBookingLeads(ctx context.Context) ([]models.BookingLead, error)
}

// MemoryCatalogRepository holds the seed catalog in process.
type MemoryCatalogRepository struct {
	artists    []models.Artist
	categories []models.Category
	leads      []models.BookingLead
}

func NewMemoryCatalogRepository(artists []models.Artist, categories []models.Category, leads []models.BookingLead) CatalogRepository {
	r := &MemoryCatalogRepository{
		artists:    make([]models.Artist, 0, len(artists)),
		categories: append([]models.Category(nil), categories...),
		leads:      append([]models.BookingLead(nil), leads...),
	}
	for _, a := range artists {
		r.artists = append(r.artists, a.Clone())
	}
	return r
}

func (r *MemoryCatalogRepository) ListArtists(ctx context.Context) ([]models.Artist, error) {
	out := make([]models.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *MemoryCatalogRepository) FindArtistByID(ctx context.Context, id string) (*models.Artist, error) {
	for _, a := range r.artists {
		if a.ID == id {
			artist := a.Clone()
			return &artist, nil
		}
	}
	return nil, ErrArtistNotFound
}

func (r *MemoryCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), r.categories...), nil
}

func (r *MemoryCatalogRepository) ListBookingLeads(ctx context.Context) ([]models.BookingLead, error) {
	return append([]models.BookingLead(nil), r.leads...), nil
}
