package handlers

import (
	"net/http"

	"artbook_backend/internal/services"
	"artbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	*BaseHandler
	artistService services.ArtistService
}

func NewArtistHandler(base *BaseHandler, artistService services.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler:   base,
		artistService: artistService,
	}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.RouterGroup) {
	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.GET("/featured", h.FeaturedArtists)
		artists.GET("/filters", h.FilterOptions)
		artists.GET("/:id", h.GetArtist)
	}
}

// ListArtists godoc
// @Summary Filter artists
// @Description Runs the filter chain over the whole catalog. Every parameter is optional and active ones are ANDed.
// @Tags artists
// @Produce json
// @Param search query string false "Case-insensitive substring of name, bio or a specialty"
// @Param category query string false "Category id" Enums(musicians, comedians, dancers, speakers, magicians, djs)
// @Param location query string false "City and state, e.g. \"Austin, TX\""
// @Param price_range query string false "Fee bucket on the maximum fee" Enums(under-1000, 1000-3000, 3000-5000, over-5000)
// @Success 200 {object} dto.ArtistListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/artists [get]
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	var req dto.ArtistListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.artistService.ListArtists(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FeaturedArtists godoc
// @Summary Featured artists
// @Description The first three artists of the catalog, shown on the home page.
// @Tags artists
// @Produce json
// @Success 200 {array} models.Artist
// @Router /api/v1/artists/featured [get]
func (h *ArtistHandler) FeaturedArtists(c *gin.Context) {
	artists, err := h.artistService.FeaturedArtists(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// FilterOptions godoc
// @Summary Filter options
// @Description Categories, distinct locations and fee buckets for the listing filters.
// @Tags artists
// @Produce json
// @Success 200 {object} dto.FilterOptionsResponse
// @Router /api/v1/artists/filters [get]
func (h *ArtistHandler) FilterOptions(c *gin.Context) {
	resp, err := h.artistService.FilterOptions(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetArtist godoc
// @Summary Get artist
// @Tags artists
// @Produce json
// @Param id path string true "Artist id"
// @Success 200 {object} models.Artist
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	artist, err := h.artistService.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}
