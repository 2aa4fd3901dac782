package usecase

import (
	"context"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/metrics"
	ratedto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/rate"
)

type RateResolver interface {
	// GetRate resolves the quote for an ordered pair: identity, then cache,
	// then fetch with triangulation, then stale fallback. The result is
	// always a tagged quote; QuoteNotFound is an answer, not an error.
	GetRate(ctx context.Context, from, to string, date time.Time) (*domain.RateQuote, error)
	RefreshAll(ctx context.Context, currencies []string) (*ratedto.RefreshReport, error)
	MarkStaleRates(ctx context.Context) (int64, error)
	SetManualRate(ctx context.Context, from, to string, rate float64) error
}

type DefaultRateResolver struct {
	rateStore domain.RateStore
	provider  domain.RateProvider
	clock     domain.Clock
	ttl       time.Duration

	Metrics *metrics.LedgerMetrics
}

const defaultRateTTL = 24 * time.Hour

func NewDefaultRateResolver(
	rateStore domain.RateStore,
	provider domain.RateProvider,
	clock domain.Clock,
	ttl time.Duration,
) *DefaultRateResolver {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}
	return &DefaultRateResolver{
		rateStore: rateStore,
		provider:  provider,
		clock:     clock,
		ttl:       ttl,
	}
}
