package monitoring

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/recipelens/backend/internal/domain"
)

type instrumentedLookup struct {
	next    domain.FlavorLookup
	metrics *Metrics
	logger  *zap.Logger
}

// InstrumentFlavorLookup wraps a FlavorLookup so every call is counted by
// outcome, timed and logged at debug level. A nil metrics only logs.
func InstrumentFlavorLookup(next domain.FlavorLookup, metrics *Metrics, logger *zap.Logger) domain.FlavorLookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &instrumentedLookup{next: next, metrics: metrics, logger: logger}
}

func (l *instrumentedLookup) Lookup(ctx context.Context, ingredientName string) (*domain.FlavorEntity, error) {
	start := time.Now()
	entity, err := l.next.Lookup(ctx, ingredientName)
	elapsed := time.Since(start)

	outcome := OutcomeFound
	switch {
	case errors.Is(err, domain.ErrFlavorNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	case entity == nil:
		outcome = OutcomeNotFound
	}

	if l.metrics != nil {
		l.metrics.ObserveFlavorLookup(outcome, elapsed)
	}

	l.logger.Debug("flavor lookup",
		zap.String("ingredient", ingredientName),
		zap.String("outcome", outcome),
		zap.Duration("duration", elapsed),
		zap.Error(err))

	return entity, err
}
