package app

import (
	"go.uber.org/zap"

	"github.com/recipelens/backend/config"
	"github.com/recipelens/backend/internal/infrastructure/flavordb"
	"github.com/recipelens/backend/internal/infrastructure/foodoscope"
	"github.com/recipelens/backend/internal/infrastructure/monitoring"
	"github.com/recipelens/backend/internal/infrastructure/recipedb"
	"github.com/recipelens/backend/internal/usecase"
)

// NewRecipeService wires the Foodoscope clients into a recipe service.
// metrics may be nil.
func NewRecipeService(cfg *config.Config, metrics *monitoring.Metrics, logger *zap.Logger) *usecase.RecipeService {
	recipeClient := recipedb.NewClient(ProviderConfig(cfg.RecipeDB), logger)
	flavorClient := flavordb.NewClient(ProviderConfig(cfg.FlavorDB), logger)
	flavors := monitoring.InstrumentFlavorLookup(flavorClient, metrics, logger)

	return usecase.NewRecipeService(
		recipeClient,
		flavors,
		NewAnalyzer(cfg.Matching, logger),
		usecase.RecipeServiceConfig{
			AnalyzeSubstitutionLimit: cfg.Matching.AnalyzeSubstitutionLimit,
			DetailSubstitutionLimit:  cfg.Matching.DetailSubstitutionLimit,
			MissingDisplayLimit:      cfg.Matching.MissingDisplayLimit,
			DefaultMinMatch:          cfg.Matching.MinMatch,
		},
		logger,
	)
}

// NewAnalyzer builds an analyzer tuned by the matching configuration
func NewAnalyzer(matching config.MatchingConfig, logger *zap.Logger) *usecase.Analyzer {
	resolver := usecase.NewSubstitutionResolver(usecase.SubstitutionConfig{
		LookupTimeout: matching.LookupTimeout,
		Concurrency:   matching.LookupConcurrency,
	}, logger)
	return usecase.NewAnalyzer(resolver)
}

// ProviderConfig converts a provider section of the configuration into client settings
func ProviderConfig(p config.ProviderConfig) foodoscope.Config {
	return foodoscope.Config{
		APIKey:            p.APIKey,
		BaseURL:           p.BaseURL,
		Timeout:           p.Timeout,
		RequestsPerSecond: p.RequestsPerSecond,
		Burst:             p.Burst,
		MaxAttempts:       p.MaxAttempts,
	}
}
