package repositories

import (
	"context"
	"errors"

	"artbook_backend/internal/models"

	"gorm.io/gorm"
)

// GormCatalogRepository reads the catalog from the database seeded by
// database.Seed, in seed order.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("position").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *GormCatalogRepository) FindArtistByID(ctx context.Context, id string) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *GormCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("position").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCatalogRepository) ListBookingLeads(ctx context.Context) ([]models.BookingLead, error) {
	var leads []models.BookingLead
	if err := r.db.WithContext(ctx).Order("id").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
