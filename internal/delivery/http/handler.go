package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipelens/backend/internal/domain"
	"github.com/recipelens/backend/internal/infrastructure/monitoring"
	"github.com/recipelens/backend/internal/usecase"
)

const (
	serviceName    = "recipelens-backend"
	serviceVersion = "1.0.0"
)

// RecipeUsecase is the application logic behind the recipe endpoints
type RecipeUsecase interface {
	AnalyzeRecipe(ctx context.Context, req *usecase.AnalyzeRequest) (*domain.RecipeAnalysis, error)
	RecipeDetail(ctx context.Context, req *usecase.DetailRequest) (*domain.RecipeDetail, error)
	SearchRecipes(ctx context.Context, req *usecase.SearchRequest) ([]domain.RecipeSummary, error)
	FindByIngredients(ctx context.Context, req *usecase.IngredientRequest) ([]domain.IngredientMatch, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes RecipeUsecase
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil recipes usecase makes the
// recipe endpoints answer 501; metrics may be nil.
func NewHandler(recipes RecipeUsecase, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		recipes: recipes,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "http")),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    serviceName,
		"version":    serviceVersion,
		"configured": h.recipes != nil,
	})
}

// AnalyzeRecipe handles POST /api/v1/recipes/analyze
func (h *Handler) AnalyzeRecipe(c *gin.Context) {
	var req usecase.AnalyzeRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.recipes.AnalyzeRecipe(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.observe(result.Analysis)
	c.JSON(http.StatusOK, result)
}

// RecipeDetail handles POST /api/v1/recipes/detail
func (h *Handler) RecipeDetail(c *gin.Context) {
	var req usecase.DetailRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.recipes.RecipeDetail(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.observe(result.Analysis)
	c.JSON(http.StatusOK, result)
}

// SearchRecipes handles POST /api/v1/recipes/search
func (h *Handler) SearchRecipes(c *gin.Context) {
	var req usecase.SearchRequest
	if !h.bind(c, &req) {
		return
	}

	results, err := h.recipes.SearchRecipes(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

// FindByIngredients handles POST /api/v1/recipes/find-by-ingredients
func (h *Handler) FindByIngredients(c *gin.Context) {
	var req usecase.IngredientRequest
	if !h.bind(c, &req) {
		return
	}

	results, err := h.recipes.FindByIngredients(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": results})
}

// bind decodes the JSON body into req, answering the request itself on failure
func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if h.recipes == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error":      "recipe service not configured (set RECIPELENS_RECIPEDB_API_KEY)",
			"request_id": c.GetString(requestIDKey),
		})
		return false
	}

	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid request body: " + err.Error(),
			"request_id": c.GetString(requestIDKey),
		})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("unhandled error",
			zap.String(requestIDKey, c.GetString(requestIDKey)),
			zap.Error(err))
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"error":      message,
		"request_id": c.GetString(requestIDKey),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRecipeAPIFailure), errors.Is(err, domain.ErrFlavorAPIFailure):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) observe(analysis *domain.Analysis) {
	if h.metrics != nil {
		h.metrics.ObserveAnalysis(analysis)
	}
}
