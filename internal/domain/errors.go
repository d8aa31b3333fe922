package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when the recipe database has no record for a title
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrFlavorNotFound is returned when the flavor database has no entity for an ingredient
	ErrFlavorNotFound = errors.New("flavor entity not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRecipeAPIFailure is returned when a RecipeDB request fails
	ErrRecipeAPIFailure = errors.New("RecipeDB API request failed")

	// ErrFlavorAPIFailure is returned when a FlavorDB request fails
	ErrFlavorAPIFailure = errors.New("FlavorDB API request failed")
)
