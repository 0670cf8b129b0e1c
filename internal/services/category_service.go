package services

import (
	"context"

	"artbook_backend/internal/models"
	"artbook_backend/internal/repositories"
	"artbook_backend/pkg/apperrors"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	catalog repositories.CatalogRepository
}

func NewCategoryService(catalog repositories.CatalogRepository) CategoryService {
	return &categoryService{catalog: catalog}
}

// ListCategories returns the categories with their stored artist counts.
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}
