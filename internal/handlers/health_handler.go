package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalog string
}

// NewHealthHandler reports which catalog backend is serving ("memory" or "postgres").
func NewHealthHandler(catalog string) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Health godoc
// @Summary Liveness
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"catalog": h.catalog,
	})
}
