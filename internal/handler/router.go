package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-concierge/internal/handler/api"
	"dining-concierge/internal/handler/middleware"
	"dining-concierge/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, dialogHandler *api.DialogHandler, authMiddleware *middleware.ServiceAuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, dialogHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, dialogHandler *api.DialogHandler, authMiddleware *middleware.ServiceAuthMiddleware) {
	engine.GET("/health", healthCheck)

	v1 := engine.Group("/v1")
	v1.Use(authMiddleware.RequireServiceToken())
	{
		v1.POST("/dialog", dialogHandler.HandleTurn)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
