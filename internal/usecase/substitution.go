package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recipelens/backend/internal/domain"
)

// SubstitutionConfig holds configuration for the substitution resolver
type SubstitutionConfig struct {
	// LookupTimeout bounds every single flavor lookup
	LookupTimeout time.Duration
	// Concurrency is the number of lookups in flight; 1 runs them sequentially
	Concurrency int
}

// SubstitutionResolver proposes substitutes for missing ingredients using an
// external flavor lookup. Lookup failures never escape: they become
// "no substitute found" suggestions.
type SubstitutionResolver struct {
	lookupTimeout time.Duration
	concurrency   int
	logger        *zap.Logger
}

// NewSubstitutionResolver creates a resolver with the given configuration
func NewSubstitutionResolver(config SubstitutionConfig, logger *zap.Logger) *SubstitutionResolver {
	timeout := config.LookupTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SubstitutionResolver{
		lookupTimeout: timeout,
		concurrency:   concurrency,
		logger:        logger.With(zap.String("component", "substitution")),
	}
}

// Resolve returns one suggestion per entry of missing, in the same order.
// Only the first limit entries are looked up; the rest get the sentinel
// suggestion without touching the lookup.
func (r *SubstitutionResolver) Resolve(
	ctx context.Context,
	missing []string,
	lookup domain.FlavorLookup,
	limit int,
) []domain.SubstitutionSuggestion {
	suggestions := make([]domain.SubstitutionSuggestion, len(missing))

	if limit < 0 {
		limit = 0
	}
	if limit > len(missing) {
		limit = len(missing)
	}
	if lookup == nil {
		limit = 0
	}

	for i := limit; i < len(missing); i++ {
		suggestions[i] = unresolved(missing[i])
	}

	if limit == 0 {
		return suggestions
	}

	// Each goroutine owns one slot of suggestions, so no locking is needed
	// and the output order never depends on completion order.
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i := 0; i < limit; i++ {
		g.Go(func() error {
			suggestions[i] = r.resolveOne(ctx, missing[i], lookup)
			return nil
		})
	}
	_ = g.Wait()

	return suggestions
}

// resolveOne performs a single bounded lookup and converts the outcome into a suggestion
func (r *SubstitutionResolver) resolveOne(
	ctx context.Context,
	ingredient string,
	lookup domain.FlavorLookup,
) domain.SubstitutionSuggestion {
	lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	entity, err := r.safeLookup(lookupCtx, ingredient, lookup)
	if err != nil || entity == nil {
		r.logger.Debug("no substitute",
			zap.String("ingredient", ingredient),
			zap.Error(err))
		return unresolved(ingredient)
	}

	substitute := entity.ReadableName
	if substitute == "" {
		substitute = domain.NoSubstituteFound
	}
	role := entity.Category
	if role == "" {
		role = domain.RoleFlavor
	}

	return domain.SubstitutionSuggestion{
		Original:        ingredient,
		Substitute:      substitute,
		Role:            role,
		ConfidenceScore: domain.ResolvedSubstitutionConfidence,
	}
}

// safeLookup runs the lookup on its own goroutine so that a collaborator
// which ignores ctx, or panics, still yields within the lookup timeout.
func (r *SubstitutionResolver) safeLookup(
	ctx context.Context,
	ingredient string,
	lookup domain.FlavorLookup,
) (*domain.FlavorEntity, error) {
	type outcome struct {
		entity *domain.FlavorEntity
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Warn("flavor lookup panicked",
					zap.String("ingredient", ingredient),
					zap.Any("panic", p))
				done <- outcome{err: domain.ErrFlavorAPIFailure}
			}
		}()
		entity, err := lookup.Lookup(ctx, ingredient)
		done <- outcome{entity: entity, err: err}
	}()

	select {
	case o := <-done:
		return o.entity, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func unresolved(ingredient string) domain.SubstitutionSuggestion {
	return domain.SubstitutionSuggestion{
		Original:        ingredient,
		Substitute:      domain.NoSubstituteFound,
		Role:            domain.RoleUnknown,
		ConfidenceScore: 0,
	}
}
