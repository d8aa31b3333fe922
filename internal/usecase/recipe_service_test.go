package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipelens/backend/internal/domain"
)

// MockRecipeProvider is a mock implementation of domain.RecipeProvider
type MockRecipeProvider struct {
	byTitle      map[string][]domain.RecipeRecord
	search       map[string][]domain.RecipeRecord
	instructions map[string][]string
	fetchErr     error
	searchErr    error

	fetchCalls []string
}

func NewMockRecipeProvider() *MockRecipeProvider {
	return &MockRecipeProvider{
		byTitle:      make(map[string][]domain.RecipeRecord),
		search:       make(map[string][]domain.RecipeRecord),
		instructions: make(map[string][]string),
	}
}

func (m *MockRecipeProvider) FetchRecipeByTitle(ctx context.Context, title string) ([]domain.RecipeRecord, error) {
	m.fetchCalls = append(m.fetchCalls, title)
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.byTitle[title], nil
}

func (m *MockRecipeProvider) SearchRecipesByTitle(ctx context.Context, title string, limit int) ([]domain.RecipeRecord, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	results := m.search[title]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *MockRecipeProvider) FetchInstructions(ctx context.Context, recipeID string) ([]string, error) {
	steps, ok := m.instructions[recipeID]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return steps, nil
}

func chickenCurry() domain.RecipeRecord {
	return domain.RecipeRecord{
		ID:          "2610",
		Title:       "Chicken Curry",
		Ingredients: []string{"Chicken", "Onion", "Garlic", "Salt", "Pepper", "Oil"},
		Region:      "Indian Subcontinent",
		SubRegion:   "Indian",
		Continent:   "Asian",
		TotalTime:   "50",
		Servings:    "4",
		Processes:   "marinate||simmer",
		Nutrients:   domain.Nutrients{Calories: 410, Protein: 30.5, Carbohydrates: 12, TotalFat: 22.2},
	}
}

func newTestService(recipes *MockRecipeProvider, flavors domain.FlavorLookup) *RecipeService {
	return NewRecipeService(recipes, flavors, NewAnalyzer(nil), RecipeServiceConfig{}, nil)
}

func TestRecipeService_AnalyzeRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("analyses the first matching recipe", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.byTitle["Chicken Curry"] = []domain.RecipeRecord{chickenCurry()}
		flavors := NewMockFlavorLookup()
		flavors.entities["garlic"] = &domain.FlavorEntity{ReadableName: "Shallot", Category: "Vegetable"}
		svc := newTestService(recipes, flavors)

		result, err := svc.AnalyzeRecipe(ctx, &AnalyzeRequest{
			RecipeName:  "  Chicken Curry ",
			Ingredients: []string{"chicken", " onion", "salt", ""},
		})

		require.NoError(t, err)
		assert.Equal(t, "2610", result.RecipeID)
		assert.Equal(t, "Chicken Curry", result.RecipeTitle)
		assert.Equal(t, 50.0, result.MatchPercent)
		assert.Equal(t, 42.0, result.Confidence)
		assert.Equal(t, domain.TierLow, result.Tier)
		assert.Len(t, result.Substitutions, 3)
		assert.Equal(t, 3, flavors.Calls())
	})

	t.Run("unknown recipe", func(t *testing.T) {
		svc := newTestService(NewMockRecipeProvider(), NewMockFlavorLookup())

		_, err := svc.AnalyzeRecipe(ctx, &AnalyzeRequest{RecipeName: "Nothing"})

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("provider failure", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.fetchErr = errors.New("dial tcp: refused")
		svc := newTestService(recipes, NewMockFlavorLookup())

		_, err := svc.AnalyzeRecipe(ctx, &AnalyzeRequest{RecipeName: "Pasta"})

		assert.ErrorIs(t, err, domain.ErrRecipeAPIFailure)
	})

	t.Run("invalid request never reaches provider", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		svc := newTestService(recipes, NewMockFlavorLookup())

		_, err := svc.AnalyzeRecipe(ctx, &AnalyzeRequest{RecipeName: " "})

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Empty(t, recipes.fetchCalls)
	})

	t.Run("nil request", func(t *testing.T) {
		svc := newTestService(NewMockRecipeProvider(), nil)
		_, err := svc.AnalyzeRecipe(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("recipe without ingredients", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.byTitle["Air"] = []domain.RecipeRecord{{ID: "1", Title: "Air"}}
		svc := newTestService(recipes, NewMockFlavorLookup())

		result, err := svc.AnalyzeRecipe(ctx, &AnalyzeRequest{RecipeName: "Air", Ingredients: []string{"salt"}})

		require.NoError(t, err)
		assert.False(t, result.IngredientsAvailable)
		assert.Equal(t, domain.TierUnavailable, result.Tier)
	})
}

func TestRecipeService_RecipeDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("builds detail with provider instructions", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.byTitle["Chicken Curry"] = []domain.RecipeRecord{chickenCurry()}
		recipes.instructions["2610"] = []string{"Marinate the chicken.", "Simmer for 30 minutes."}
		flavors := NewMockFlavorLookup()
		flavors.entities["garlic"] = &domain.FlavorEntity{ReadableName: "Shallot", Category: "Vegetable"}
		svc := newTestService(recipes, flavors)

		detail, err := svc.RecipeDetail(ctx, &DetailRequest{
			RecipeName:         "Chicken Curry",
			CheckedIngredients: []string{"Chicken", "onion"},
			ServingMultiplier:  2,
		})

		require.NoError(t, err)
		assert.Equal(t, "Chicken Curry", detail.Overview.Name)
		assert.Equal(t, "Hard", detail.Overview.Difficulty)
		assert.Equal(t, 820.0, detail.Nutrition.Calories)
		assert.Equal(t, 61.0, detail.Nutrition.Protein)
		require.Len(t, detail.Ingredients, 6)
		assert.True(t, detail.Ingredients[0].Available)
		assert.True(t, detail.Ingredients[1].Available)
		assert.False(t, detail.Ingredients[2].Available)
		assert.Equal(t, 1, detail.SubstitutionCount)
		require.Len(t, detail.Procedure, 2)
		assert.Equal(t, "Step 1", detail.Procedure[0].Title)
	})

	t.Run("falls back to processes then default procedure", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.byTitle["Chicken Curry"] = []domain.RecipeRecord{chickenCurry()}
		bare := chickenCurry()
		bare.ID, bare.Title, bare.Processes = "", "Plain Rice", ""
		recipes.byTitle["Plain Rice"] = []domain.RecipeRecord{bare}
		svc := newTestService(recipes, NewMockFlavorLookup())

		detail, err := svc.RecipeDetail(ctx, &DetailRequest{RecipeName: "Chicken Curry"})
		require.NoError(t, err)
		require.Len(t, detail.Procedure, 2)
		assert.Equal(t, "Marinate", detail.Procedure[0].Title)
		assert.Equal(t, 410.0, detail.Nutrition.Calories)

		detail, err = svc.RecipeDetail(ctx, &DetailRequest{RecipeName: "Plain Rice"})
		require.NoError(t, err)
		assert.Equal(t, defaultProcedure, detail.Procedure)
	})

	t.Run("rejects unsupported multiplier", func(t *testing.T) {
		svc := newTestService(NewMockRecipeProvider(), nil)

		_, err := svc.RecipeDetail(ctx, &DetailRequest{RecipeName: "Curry", ServingMultiplier: 4})

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestRecipeService_SearchRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("scores by position", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		for _, title := range []string{"Curry A", "Curry B", "Curry C"} {
			r := chickenCurry()
			r.Title = title
			recipes.search["curry"] = append(recipes.search["curry"], r)
		}
		svc := newTestService(recipes, nil)

		results, err := svc.SearchRecipes(ctx, &SearchRequest{RecipeName: "curry", NumRecipes: 2})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Curry A", results[0].Name)
		assert.Equal(t, 90.0, results[0].MatchScore)
		assert.Equal(t, 82.0, results[1].MatchScore)
	})

	t.Run("defaults number of recipes", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		for i := 0; i < 8; i++ {
			recipes.search["soup"] = append(recipes.search["soup"], domain.RecipeRecord{Title: "Soup"})
		}
		svc := newTestService(recipes, nil)

		results, err := svc.SearchRecipes(ctx, &SearchRequest{RecipeName: "soup"})

		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("provider failure", func(t *testing.T) {
		recipes := NewMockRecipeProvider()
		recipes.searchErr = errors.New("timeout")
		svc := newTestService(recipes, nil)

		_, err := svc.SearchRecipes(ctx, &SearchRequest{RecipeName: "soup"})

		assert.ErrorIs(t, err, domain.ErrRecipeAPIFailure)
	})
}

func TestPositionalScore(t *testing.T) {
	assert.Equal(t, 90.0, positionalScore(0))
	assert.Equal(t, 10.0, positionalScore(10))
	assert.Equal(t, 2.0, positionalScore(11))
	assert.Equal(t, 0.0, positionalScore(12))
}

func TestRecipeService_FindByIngredients(t *testing.T) {
	ctx := context.Background()

	omelette := domain.RecipeRecord{ID: "1", Title: "Omelette", Ingredients: []string{"egg", "butter", "salt"}, TotalTime: "10"}
	eggFriedRice := domain.RecipeRecord{ID: "2", Title: "Egg Fried Rice", Ingredients: []string{"egg", "rice", "soy sauce", "scallion"}}
	cake := domain.RecipeRecord{ID: "3", Title: "Cake", Ingredients: []string{"egg", "flour", "sugar", "butter", "milk", "vanilla", "baking powder", "salt"}}

	newProvider := func() *MockRecipeProvider {
		recipes := NewMockRecipeProvider()
		recipes.search["egg"] = []domain.RecipeRecord{omelette, eggFriedRice, cake}
		recipes.search["butter"] = []domain.RecipeRecord{omelette, cake}
		recipes.byTitle["Omelette"] = []domain.RecipeRecord{omelette}
		recipes.byTitle["Egg Fried Rice"] = []domain.RecipeRecord{eggFriedRice}
		recipes.byTitle["Cake"] = []domain.RecipeRecord{cake}
		return recipes
	}

	t.Run("keeps recipes above the threshold in discovery order", func(t *testing.T) {
		recipes := newProvider()
		svc := newTestService(recipes, nil)

		results, err := svc.FindByIngredients(ctx, &IngredientRequest{
			Ingredients: []string{"egg", "butter", "rice", "salt"},
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Omelette", results[0].Name)
		assert.Equal(t, 100.0, results[0].MatchScore)
		assert.Equal(t, "10 min", results[0].Time)
		assert.Equal(t, "Egg Fried Rice", results[1].Name)
		assert.Equal(t, 50.0, results[1].MatchScore)
		// duplicates across seeds are fetched once
		assert.Equal(t, []string{"Omelette", "Egg Fried Rice", "Cake"}, recipes.fetchCalls)
	})

	t.Run("lower threshold caps missing list", func(t *testing.T) {
		svc := newTestService(newProvider(), nil)

		results, err := svc.FindByIngredients(ctx, &IngredientRequest{
			Ingredients: []string{"egg"},
			MinMatch:    10,
		})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Cake", results[2].Name)
		assert.Len(t, results[2].Missing, 5)
	})

	t.Run("empty ingredient list is invalid", func(t *testing.T) {
		svc := newTestService(newProvider(), nil)

		_, err := svc.FindByIngredients(ctx, &IngredientRequest{Ingredients: []string{" "}})

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("failing seed search is skipped", func(t *testing.T) {
		recipes := newProvider()
		recipes.searchErr = errors.New("boom")
		svc := newTestService(recipes, nil)

		results, err := svc.FindByIngredients(ctx, &IngredientRequest{Ingredients: []string{"egg"}})

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
