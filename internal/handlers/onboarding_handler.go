package handlers

import (
	"net/http"

	"artbook_backend/internal/logger"
	"artbook_backend/internal/services"
	"artbook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EventStream upgrades a request into a live feed of one application.
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, applicationID string) error
}

type OnboardingHandler struct {
	*BaseHandler
	onboardingService services.OnboardingService
	events            EventStream
}

func NewOnboardingHandler(base *BaseHandler, onboardingService services.OnboardingService, events EventStream) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:       base,
		onboardingService: onboardingService,
		events:            events,
	}
}

func (h *OnboardingHandler) RegisterRoutes(r *gin.RouterGroup) {
	onboarding := r.Group("/onboarding")
	{
		onboarding.POST("", h.Start)
		onboarding.GET("/:id", h.Get)
		onboarding.PATCH("/:id", h.UpdateDraft)
		onboarding.DELETE("/:id", h.Discard)
		onboarding.POST("/:id/languages", h.ToggleLanguage)
		onboarding.POST("/:id/next", h.Next)
		onboarding.POST("/:id/previous", h.Previous)
		onboarding.POST("/:id/submit", h.Submit)
	}
}

// RegisterWSRoutes mounts the live event feed.
func (h *OnboardingHandler) RegisterWSRoutes(r *gin.RouterGroup) {
	r.GET("/onboarding/:id", h.Watch)
}

// Start godoc
// @Summary Start onboarding
// @Description Opens an empty wizard session at the personal step.
// @Tags onboarding
// @Produce json
// @Success 201 {object} dto.ApplicationResponse
// @Router /api/v1/onboarding [post]
func (h *OnboardingHandler) Start(c *gin.Context) {
	resp, err := h.onboardingService.Start(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get onboarding state
// @Tags onboarding
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id} [get]
func (h *OnboardingHandler) Get(c *gin.Context) {
	resp, err := h.onboardingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDraft godoc
// @Summary Edit draft fields
// @Description Merges the fields present in the body into the draft. Validation runs on next and submit.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param input body dto.UpdateDraftRequest true "Changed fields"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400,404,409 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id} [patch]
func (h *OnboardingHandler) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.onboardingService.UpdateDraft(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleLanguage godoc
// @Summary Select or clear a language
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param input body dto.ToggleLanguageRequest true "Language and checkbox state"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400,404,409 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id}/languages [post]
func (h *OnboardingHandler) ToggleLanguage(c *gin.Context) {
	var req dto.ToggleLanguageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.onboardingService.ToggleLanguage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Next godoc
// @Summary Advance one step
// @Description Validates the fields of the current step only. Field errors come back in error.details.
// @Tags onboarding
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400,404,409 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id}/next [post]
func (h *OnboardingHandler) Next(c *gin.Context) {
	resp, err := h.onboardingService.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Previous godoc
// @Summary Go back one step
// @Tags onboarding
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404,409 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id}/previous [post]
func (h *OnboardingHandler) Previous(c *gin.Context) {
	resp, err := h.onboardingService.Previous(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit the application
// @Description Validates the last step and starts the submission. The session reaches the success step after the submit delay.
// @Tags onboarding
// @Produce json
// @Param id path string true "Application id"
// @Success 202 {object} dto.ApplicationResponse
// @Failure 400,404,409 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id}/submit [post]
func (h *OnboardingHandler) Submit(c *gin.Context) {
	resp, err := h.onboardingService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// Discard godoc
// @Summary Leave the wizard
// @Description Drops the session and its draft in any state.
// @Tags onboarding
// @Param id path string true "Application id"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/onboarding/{id} [delete]
func (h *OnboardingHandler) Discard(c *gin.Context) {
	if err := h.onboardingService.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Watch godoc
// @Summary Live application events
// @Description Websocket feed of state changes of one application.
// @Tags onboarding
// @Param id path string true "Application id"
// @Success 101
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /ws/onboarding/{id} [get]
func (h *OnboardingHandler) Watch(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.onboardingService.Get(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.events.ServeWS(c.Writer, c.Request, id); err != nil {
		logger.CtxWithError(c.Request.Context(), "WebSocket upgrade failed", err, "application_id", id)
	}
}
