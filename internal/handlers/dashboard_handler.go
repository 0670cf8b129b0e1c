package handlers

import (
	"net/http"

	"artbook_backend/internal/services"
	"artbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/leads", h.ListLeads)
		dashboard.GET("/stats", h.Stats)
	}
}

// ListLeads godoc
// @Summary List booking leads
// @Tags dashboard
// @Produce json
// @Param status query string false "Lead status filter" Enums(all, pending, confirmed, declined)
// @Success 200 {object} dto.LeadListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/dashboard/leads [get]
func (h *DashboardHandler) ListLeads(c *gin.Context) {
	var req dto.LeadListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.dashboardService.ListLeads(c.Request.Context(), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Dashboard stats
// @Description Lead counts and revenue from confirmed bookings.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
