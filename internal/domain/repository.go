package domain

import "context"

// RecipeProvider defines the interface for the external recipe database.
// A missing recipe is reported as an empty slice, never as an error.
type RecipeProvider interface {
	FetchRecipeByTitle(ctx context.Context, title string) ([]RecipeRecord, error)
	SearchRecipesByTitle(ctx context.Context, title string, limit int) ([]RecipeRecord, error)
	FetchInstructions(ctx context.Context, recipeID string) ([]string, error)
}

// FlavorLookup defines the interface for the external flavor-pairing database.
// It returns ErrFlavorNotFound (or a nil entity) when nothing matches.
type FlavorLookup interface {
	Lookup(ctx context.Context, ingredientName string) (*FlavorEntity, error)
}
