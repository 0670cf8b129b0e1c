package dto

import (
	"artbook_backend/internal/algorithms"
	"artbook_backend/internal/models"
)

// ArtistListRequest - query of GET /artists. Empty fields do not constrain.
type ArtistListRequest struct {
	Search     string `form:"search" json:"search"`
	Category   string `form:"category" json:"category" validate:"is-category"`
	Location   string `form:"location" json:"location"`
	PriceRange string `form:"price_range" json:"price_range" validate:"is-price-bucket"`
}

func (r *ArtistListRequest) Filter() algorithms.ArtistFilter {
	return algorithms.ArtistFilter{
		Search:     r.Search,
		Category:   r.Category,
		Location:   r.Location,
		PriceRange: algorithms.PriceBucket(r.PriceRange),
	}
}

type ArtistListResponse struct {
	Artists       []models.Artist `json:"artists"`
	Total         int             `json:"total"`
	ActiveFilters int             `json:"active_filters"`
}

// FilterOptionsResponse feeds the filter dropdowns of the listing page.
type FilterOptionsResponse struct {
	Categories  []models.Category              `json:"categories"`
	Locations   []string                       `json:"locations"`
	PriceRanges []algorithms.PriceBucketOption `json:"price_ranges"`
}
