package routes

import (
	"net/http"

	"artbook_backend/docs"
	"artbook_backend/internal/handlers"
	"artbook_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the API, the websocket feed, health and docs.
// metricsPath and metricsHandler are skipped when metricsHandler is nil.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	metricsPath string,
	metricsHandler http.Handler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ArtistHandler.RegisterRoutes(api)
		appHandlers.CategoryHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
		appHandlers.OnboardingHandler.RegisterRoutes(api)
	}

	wsGroup := ginRouter.Group("/ws")
	appHandlers.OnboardingHandler.RegisterWSRoutes(wsGroup)
	logger.Info("WebSocket route /ws/onboarding/:id registered")

	ginRouter.GET("/health", appHandlers.HealthHandler.Health)

	docs.SwaggerInfo.BasePath = "/"
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if metricsHandler != nil {
		ginRouter.GET(metricsPath, gin.WrapH(metricsHandler))
	}
}
