// Package recipedb implements domain.RecipeProvider against the Foodoscope RecipeDB API.
package recipedb

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/recipelens/backend/internal/domain"
	"github.com/recipelens/backend/internal/infrastructure/foodoscope"
)

// Client handles communication with the RecipeDB API
type Client struct {
	api    *foodoscope.Client
	logger *zap.Logger
}

var _ domain.RecipeProvider = (*Client)(nil)

// NewClient creates a new RecipeDB client
func NewClient(config foodoscope.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "recipedb"))

	return &Client{
		api:    foodoscope.NewClient(config, logger),
		logger: logger,
	}
}

// FetchRecipeByTitle returns the first recipe whose title matches, with its
// ingredient list filled in from the detail endpoint. An unknown title yields
// an empty slice and no error.
func (c *Client) FetchRecipeByTitle(ctx context.Context, title string) ([]domain.RecipeRecord, error) {
	records, err := c.searchByTitle(ctx, title)
	if err != nil || len(records) == 0 {
		return records, err
	}

	recipe := records[0]
	if recipe.ID == "" {
		c.logger.Debug("recipe has no id, skipping detail lookup", zap.String("title", title))
		return []domain.RecipeRecord{recipe}, nil
	}

	var detail detailResponse
	err = c.api.GetJSON(ctx, "/search-recipe/"+url.PathEscape(recipe.ID), nil, &detail)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// The title result is still usable, just without ingredients
		c.logger.Warn("recipe detail unavailable",
			zap.String("recipe_id", recipe.ID),
			zap.Error(err))
		return []domain.RecipeRecord{recipe}, nil
	}

	return []domain.RecipeRecord{mergeDetail(recipe, &detail)}, nil
}

// SearchRecipesByTitle lists up to limit recipes whose title matches.
// Search results carry no ingredient lists.
func (c *Client) SearchRecipesByTitle(ctx context.Context, title string, limit int) ([]domain.RecipeRecord, error) {
	records, err := c.searchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// FetchInstructions returns the cooking steps of a recipe
func (c *Client) FetchInstructions(ctx context.Context, recipeID string) ([]string, error) {
	var resp instructionsResponse
	err := c.api.GetJSON(ctx, "/instructions/"+url.PathEscape(recipeID), nil, &resp)
	if err != nil {
		if errors.Is(err, foodoscope.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, wrapFailure(err)
	}

	if len(resp.Data) > 0 {
		return resp.Data, nil
	}
	return resp.Steps, nil
}

func (c *Client) searchByTitle(ctx context.Context, title string) ([]domain.RecipeRecord, error) {
	var resp titleResponse
	err := c.api.GetJSON(ctx, "/recipe-bytitle/recipeByTitle", url.Values{"title": {title}}, &resp)
	if err != nil {
		if errors.Is(err, foodoscope.ErrNotFound) {
			return []domain.RecipeRecord{}, nil
		}
		return nil, wrapFailure(err)
	}

	if resp.Success != "" && !resp.Success.truthy() {
		c.logger.Debug("title search unsuccessful", zap.String("title", title))
		return []domain.RecipeRecord{}, nil
	}

	records := make([]domain.RecipeRecord, 0, len(resp.Data))
	for i := range resp.Data {
		records = append(records, mapRecipe(&resp.Data[i]))
	}

	c.logger.Debug("title search",
		zap.String("title", title),
		zap.Int("results", len(records)))

	return records, nil
}

func wrapFailure(err error) error {
	if errors.Is(err, foodoscope.ErrThrottled) {
		return fmt.Errorf("%w: %w: %v", domain.ErrRecipeAPIFailure, domain.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrRecipeAPIFailure, err)
}
