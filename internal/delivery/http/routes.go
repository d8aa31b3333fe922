package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipelens/backend/config"
	"github.com/recipelens/backend/internal/infrastructure/monitoring"
)

// SetupRouter creates and configures the Gin router.
// metrics may be nil, in which case /metrics is not served.
func SetupRouter(cfg *config.Config, handler *Handler, metrics *monitoring.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	if metrics != nil {
		router.Use(metrics.HTTPMiddleware())
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst).Middleware())
	}
	{
		recipes := v1.Group("/recipes")
		{
			recipes.POST("/search", handler.SearchRecipes)
			recipes.POST("/detail", handler.RecipeDetail)
			recipes.POST("/analyze", handler.AnalyzeRecipe)
			recipes.POST("/find-by-ingredients", handler.FindByIngredients)
		}
	}

	return router
}
