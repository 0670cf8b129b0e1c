package services

import (
	"context"
	"errors"

	"artbook_backend/internal/algorithms"
	"artbook_backend/internal/metrics"
	"artbook_backend/internal/models"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/services/dto"
	"artbook_backend/pkg/apperrors"
)

type ArtistService interface {
	ListArtists(ctx context.Context, req *dto.ArtistListRequest) (*dto.ArtistListResponse, error)
	GetArtist(ctx context.Context, id string) (*models.Artist, error)
	FeaturedArtists(ctx context.Context) ([]models.Artist, error)
	FilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error)
}

type artistService struct {
	catalog repositories.CatalogRepository
	metrics *metrics.Manager
}

func NewArtistService(catalog repositories.CatalogRepository, m *metrics.Manager) ArtistService {
	return &artistService{
		catalog: catalog,
		metrics: m,
	}
}

// ListArtists runs the filter chain over the whole catalog on every call.
func (s *artistService) ListArtists(ctx context.Context, req *dto.ArtistListRequest) (*dto.ArtistListResponse, error) {
	artists, err := s.catalog.ListArtists(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filter := req.Filter()
	result := algorithms.FilterArtists(artists, filter)
	s.metrics.ObserveFilterResults(len(result))

	return &dto.ArtistListResponse{
		Artists:       result,
		Total:         len(result),
		ActiveFilters: algorithms.ActiveFilterCount(filter),
	}, nil
}

func (s *artistService) GetArtist(ctx context.Context, id string) (*models.Artist, error) {
	artist, err := s.catalog.FindArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return artist, nil
}

func (s *artistService) FeaturedArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.catalog.ListArtists(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return algorithms.Featured(artists, algorithms.FeaturedCount), nil
}

func (s *artistService) FilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	artists, err := s.catalog.ListArtists(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FilterOptionsResponse{
		Categories:  categories,
		Locations:   algorithms.Locations(artists),
		PriceRanges: algorithms.PriceBuckets(),
	}, nil
}
