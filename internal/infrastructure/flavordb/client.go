// Package flavordb implements domain.FlavorLookup against the Foodoscope FlavorDB API.
package flavordb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/recipelens/backend/internal/domain"
	"github.com/recipelens/backend/internal/infrastructure/foodoscope"
)

// entityResponse is the body of GET /entities/by-readable-name
type entityResponse struct {
	Success interface{} `json:"success"`
	Data    []rawEntity `json:"data"`
}

type rawEntity struct {
	EntityID     interface{} `json:"entity_id"`
	ReadableName string      `json:"entity_readable_name"`
	Category     string      `json:"entity_category"`
	EntityAlias  string      `json:"entity_alias_readable"`
}

// Client handles communication with the FlavorDB API
type Client struct {
	api    *foodoscope.Client
	logger *zap.Logger
}

var _ domain.FlavorLookup = (*Client)(nil)

// NewClient creates a new FlavorDB client
func NewClient(config foodoscope.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "flavordb"))

	return &Client{
		api:    foodoscope.NewClient(config, logger),
		logger: logger,
	}
}

// Lookup finds the flavor entity for an ingredient. It tries the cleaned
// ingredient name and then its first word, returning the first hit.
// Returns domain.ErrFlavorNotFound when no candidate matches and
// domain.ErrFlavorAPIFailure when every attempt failed upstream.
func (c *Client) Lookup(ctx context.Context, ingredientName string) (*domain.FlavorEntity, error) {
	candidates := QueryCandidates(ingredientName)
	if len(candidates) == 0 {
		return nil, domain.ErrFlavorNotFound
	}

	var lastErr error
	for _, candidate := range candidates {
		entity, err := c.lookupOne(ctx, candidate)
		if err == nil {
			c.logger.Debug("flavor entity found",
				zap.String("ingredient", ingredientName),
				zap.String("query", candidate),
				zap.String("entity", entity.ReadableName))
			return entity, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, domain.ErrFlavorNotFound) {
			lastErr = err
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, domain.ErrFlavorNotFound
}

func (c *Client) lookupOne(ctx context.Context, name string) (*domain.FlavorEntity, error) {
	var resp entityResponse
	err := c.api.GetJSON(ctx, "/entities/by-readable-name", url.Values{"readable_name": {name}}, &resp)
	if err != nil {
		if errors.Is(err, foodoscope.ErrNotFound) {
			return nil, domain.ErrFlavorNotFound
		}
		if errors.Is(err, foodoscope.ErrThrottled) {
			return nil, fmt.Errorf("%w: %w: %v", domain.ErrFlavorAPIFailure, domain.ErrRateLimited, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrFlavorAPIFailure, err)
	}

	if !successful(resp.Success) || len(resp.Data) == 0 {
		return nil, domain.ErrFlavorNotFound
	}

	raw := resp.Data[0]
	name = strings.TrimSpace(raw.ReadableName)
	if name == "" {
		name = strings.TrimSpace(raw.EntityAlias)
	}

	return &domain.FlavorEntity{
		ID:           idString(raw.EntityID),
		ReadableName: name,
		Category:     strings.TrimSpace(raw.Category),
	}, nil
}

// successful treats a missing success flag as success
func successful(v interface{}) bool {
	switch s := v.(type) {
	case nil:
		return true
	case bool:
		return s
	case string:
		s = strings.ToLower(strings.TrimSpace(s))
		return s == "true" || s == "1"
	case float64:
		return s != 0
	}
	return false
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	}
	return fmt.Sprint(v)
}
