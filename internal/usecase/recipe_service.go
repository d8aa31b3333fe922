package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/recipelens/backend/internal/domain"
)

// Orchestration defaults
const (
	defaultSubstitutionLimit = 3
	defaultMissingDisplay    = 5
	defaultMinMatch          = 50.0
	defaultNumRecipes        = 5
	maxIngredientResults     = 5
	ingredientSeedCount      = 2
	recipesPerSeed           = 3
	positionalTopScore       = 90.0
	positionalStep           = 8.0
)

// RecipeServiceConfig holds configuration for the recipe service
type RecipeServiceConfig struct {
	// AnalyzeSubstitutionLimit caps flavor lookups for AnalyzeRecipe
	AnalyzeSubstitutionLimit int
	// DetailSubstitutionLimit caps flavor lookups for RecipeDetail
	DetailSubstitutionLimit int
	// MissingDisplayLimit caps the missing list shown per FindByIngredients result
	MissingDisplayLimit int
	// DefaultMinMatch applies when a FindByIngredients request leaves MinMatch unset
	DefaultMinMatch float64
}

// RecipeService answers recipe questions by combining the recipe database,
// the flavor database and the scoring pipeline.
type RecipeService struct {
	recipes  domain.RecipeProvider
	flavors  domain.FlavorLookup
	analyzer *Analyzer
	logger   *zap.Logger

	analyzeLimit   int
	detailLimit    int
	missingDisplay int
	minMatch       float64
}

// NewRecipeService creates a new recipe service with dependencies
func NewRecipeService(
	recipes domain.RecipeProvider,
	flavors domain.FlavorLookup,
	analyzer *Analyzer,
	config RecipeServiceConfig,
	logger *zap.Logger,
) *RecipeService {
	if analyzer == nil {
		analyzer = NewAnalyzer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	minMatch := config.DefaultMinMatch
	if minMatch <= 0 || minMatch > 100 {
		minMatch = defaultMinMatch
	}

	return &RecipeService{
		recipes:        recipes,
		flavors:        flavors,
		analyzer:       analyzer,
		logger:         logger.With(zap.String("component", "recipe_service")),
		analyzeLimit:   positiveOr(config.AnalyzeSubstitutionLimit, defaultSubstitutionLimit),
		detailLimit:    positiveOr(config.DetailSubstitutionLimit, defaultSubstitutionLimit),
		missingDisplay: positiveOr(config.MissingDisplayLimit, defaultMissingDisplay),
		minMatch:       minMatch,
	}
}

// AnalyzeRecipe scores the first recipe matching a title against the user's ingredients.
// Flow: validate -> fetch recipe -> analyze -> return
func (s *RecipeService) AnalyzeRecipe(ctx context.Context, req *AnalyzeRequest) (*domain.RecipeAnalysis, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	req.RecipeName = strings.TrimSpace(req.RecipeName)
	req.Ingredients = cleanIngredients(req.Ingredients)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	recipe, err := s.fetchRecipe(ctx, req.RecipeName)
	if err != nil {
		return nil, err
	}

	analysis := s.analyzer.Analyze(ctx, recipe.Ingredients, req.Ingredients, s.flavors, s.analyzeLimit)

	s.logger.Info("recipe analysed",
		zap.String("recipe", recipe.Title),
		zap.Float64("match_percent", analysis.MatchPercent),
		zap.Float64("confidence", analysis.Confidence),
		zap.String("tier", string(analysis.Tier)))

	return &domain.RecipeAnalysis{
		RecipeID:    recipe.ID,
		RecipeTitle: titleOr(recipe.Title, req.RecipeName),
		Analysis:    analysis,
	}, nil
}

// RecipeDetail builds the full view of a recipe for the ingredients the user has checked
func (s *RecipeService) RecipeDetail(ctx context.Context, req *DetailRequest) (*domain.RecipeDetail, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	req.RecipeName = strings.TrimSpace(req.RecipeName)
	req.CheckedIngredients = cleanIngredients(req.CheckedIngredients)
	if req.ServingMultiplier == 0 {
		req.ServingMultiplier = 1
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	recipe, err := s.fetchRecipe(ctx, req.RecipeName)
	if err != nil {
		return nil, err
	}

	analysis := s.analyzer.Analyze(ctx, recipe.Ingredients, req.CheckedIngredients, s.flavors, s.detailLimit)

	checked := make(map[string]struct{}, len(req.CheckedIngredients))
	for _, ing := range req.CheckedIngredients {
		checked[Normalize(ing)] = struct{}{}
	}

	ingredients := make([]domain.IngredientStatus, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		_, available := checked[Normalize(ing)]
		ingredients = append(ingredients, domain.IngredientStatus{
			Name:      ing,
			Quantity:  "as needed",
			Available: available,
			Role:      "Ingredient",
		})
	}

	resolved := 0
	for _, sub := range analysis.Substitutions {
		if sub.Resolved() {
			resolved++
		}
	}

	overview := overviewFor(recipe)
	overview.Name = titleOr(recipe.Title, req.RecipeName)

	return &domain.RecipeDetail{
		Overview:          overview,
		Nutrition:         scaleNutrients(recipe.Nutrients, req.ServingMultiplier),
		Ingredients:       ingredients,
		Analysis:          analysis,
		SubstitutionCount: resolved,
		Procedure:         s.procedureFor(ctx, recipe),
	}, nil
}

// SearchRecipes lists recipes whose title matches the requested name.
// Results keep provider order and are scored by position only.
func (s *RecipeService) SearchRecipes(ctx context.Context, req *SearchRequest) ([]domain.RecipeSummary, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	req.RecipeName = strings.TrimSpace(req.RecipeName)
	if req.NumRecipes == 0 {
		req.NumRecipes = defaultNumRecipes
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	records, err := s.recipes.SearchRecipesByTitle(ctx, req.RecipeName, req.NumRecipes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecipeAPIFailure, err)
	}

	summaries := make([]domain.RecipeSummary, 0, len(records))
	for i := range records {
		if i >= req.NumRecipes {
			break
		}
		summaries = append(summaries, domain.RecipeSummary{
			RecipeOverview: overviewFor(&records[i]),
			MatchScore:     positionalScore(i),
			Nutrition:      scaleNutrients(records[i].Nutrients, 1),
		})
	}

	return summaries, nil
}

// FindByIngredients discovers recipes that can be cooked mostly from the given ingredients.
// The first few ingredients seed a title search; every candidate is fetched in
// full and kept when its match percentage reaches MinMatch.
func (s *RecipeService) FindByIngredients(ctx context.Context, req *IngredientRequest) ([]domain.IngredientMatch, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	req.Ingredients = cleanIngredients(req.Ingredients)
	if req.MinMatch == 0 {
		req.MinMatch = s.minMatch
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	seeds := req.Ingredients
	if len(seeds) > ingredientSeedCount {
		seeds = seeds[:ingredientSeedCount]
	}

	results := make([]domain.IngredientMatch, 0, maxIngredientResults)
	seen := make(map[string]struct{})

	for _, seed := range seeds {
		candidates, err := s.recipes.SearchRecipesByTitle(ctx, seed, recipesPerSeed)
		if err != nil {
			s.logger.Warn("seed search failed", zap.String("seed", seed), zap.Error(err))
			continue
		}

		for _, candidate := range candidates {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			if _, dup := seen[candidate.Title]; dup || candidate.Title == "" {
				continue
			}
			seen[candidate.Title] = struct{}{}

			full, err := s.recipes.FetchRecipeByTitle(ctx, candidate.Title)
			if err != nil || len(full) == 0 || len(full[0].Ingredients) == 0 {
				continue
			}
			recipe := full[0]

			match := ComputeMatch(recipe.Ingredients, req.Ingredients)
			if match.MatchPercent < req.MinMatch {
				continue
			}

			missing := match.Missing
			if len(missing) > s.missingDisplay {
				missing = missing[:s.missingDisplay]
			}

			results = append(results, domain.IngredientMatch{
				Name:       titleOr(recipe.Title, candidate.Title),
				MatchScore: match.MatchPercent,
				Matched:    match.Matched,
				Missing:    missing,
				Nutrition:  scaleNutrients(candidate.Nutrients, 1),
				Diet:       dietFor(&candidate),
				Time:       overviewFor(&candidate).Time,
			})

			// First qualifying recipes win; a later, better-scoring
			// candidate is dropped once the result list is full.
			if len(results) == maxIngredientResults {
				return results, nil
			}
		}
	}

	return results, nil
}

// fetchRecipe returns the first recipe matching a title
func (s *RecipeService) fetchRecipe(ctx context.Context, title string) (*domain.RecipeRecord, error) {
	records, err := s.recipes.FetchRecipeByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeAPIFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRecipeAPIFailure, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &records[0], nil
}

// procedureFor prefers provider instructions, then the recipe's process list,
// then a generic three-step procedure.
func (s *RecipeService) procedureFor(ctx context.Context, recipe *domain.RecipeRecord) []domain.ProcedureStep {
	if recipe.ID != "" {
		steps, err := s.recipes.FetchInstructions(ctx, recipe.ID)
		if err != nil {
			s.logger.Debug("instructions unavailable",
				zap.String("recipe_id", recipe.ID),
				zap.Error(err))
		} else if procedure := procedureFromInstructions(steps); len(procedure) > 0 {
			return procedure
		}
	}

	if procedure := procedureFromProcesses(recipe.Processes); len(procedure) > 0 {
		return procedure
	}

	procedure := make([]domain.ProcedureStep, len(defaultProcedure))
	copy(procedure, defaultProcedure)
	return procedure
}

// positionalScore is the display score of the i-th search result
func positionalScore(i int) float64 {
	score := positionalTopScore - positionalStep*float64(i)
	if score < 0 {
		return 0
	}
	return score
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
