package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/recipelens/backend/internal/domain"
)

// AnalyzeRequest asks how well a named recipe fits the user's ingredients
type AnalyzeRequest struct {
	RecipeName  string   `json:"recipe_name" validate:"required,min=2,max=100"`
	Ingredients []string `json:"ingredients" validate:"max=50"`
}

// DetailRequest asks for the full view of a named recipe
type DetailRequest struct {
	RecipeName         string   `json:"recipe_name" validate:"required,min=2,max=100"`
	CheckedIngredients []string `json:"checked_ingredients" validate:"max=50"`
	ServingMultiplier  float64  `json:"serving_multiplier" validate:"serving_multiplier"`
}

// SearchRequest asks for recipes whose title matches a name
type SearchRequest struct {
	RecipeName string `json:"recipe_name" validate:"required,min=2,max=100"`
	NumRecipes int    `json:"num_recipes" validate:"min=1,max=20"`
}

// IngredientRequest asks for recipes that can be cooked from a list of ingredients
type IngredientRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=50"`
	MinMatch    float64  `json:"min_match" validate:"min=0,max=100"`
}

// allowedServingMultipliers are the portion sizes a recipe can be scaled to
var allowedServingMultipliers = []float64{0.5, 1, 2, 3}

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// oneof does not accept floats
	_ = v.RegisterValidation("serving_multiplier", func(fl validator.FieldLevel) bool {
		m := fl.Field().Float()
		for _, allowed := range allowedServingMultipliers {
			if m == allowed {
				return true
			}
		}
		return false
	})
	return v
}

// fieldMessages maps "Field.tag" to the message returned to the user
var fieldMessages = map[string]string{
	"RecipeName.required":                  "recipe name cannot be empty",
	"RecipeName.min":                       "recipe name is too short",
	"RecipeName.max":                       "recipe name is too long",
	"Ingredients.required":                 "ingredient list cannot be empty",
	"Ingredients.min":                      "ingredient list cannot be empty",
	"Ingredients.max":                      "too many ingredients provided (max 50)",
	"CheckedIngredients.max":               "too many ingredients provided (max 50)",
	"ServingMultiplier.serving_multiplier": "serving multiplier must be 0.5, 1, 2, or 3",
	"NumRecipes.min":                       "number of recipes must be at least 1",
	"NumRecipes.max":                       "number of recipes must be at most 20",
	"MinMatch.min":                         "minimum match must be between 0 and 100",
	"MinMatch.max":                         "minimum match must be between 0 and 100",
}

// validateRequest checks a request struct and wraps the first failure in ErrInvalidRequest
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, msg)
		}
		return fmt.Errorf("%w: %s failed %s", domain.ErrInvalidRequest, strings.ToLower(fe.Field()), fe.Tag())
	}

	return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
}

// cleanIngredients trims names and drops empty entries
func cleanIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			out = append(out, ing)
		}
	}
	return out
}
