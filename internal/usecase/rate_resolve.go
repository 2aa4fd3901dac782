package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
)

// GetRate is cache-first: identity, fresh cache row, upstream fetch,
// triangulation through the provider base, stale fallback, not_found.
// date is recorded on transactions, not used for quoting: historical rates
// are never backfilled.
func (uc *DefaultRateResolver) GetRate(ctx context.Context, from, to string, date time.Time) (*domain.RateQuote, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return uc.quote(1.0, domain.QuoteFresh), nil
	}

	cached, err := uc.lookupCached(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if cached != nil && !cached.Expired(uc.clock.Now()) {
		return uc.quote(cached.Rate, domain.QuoteFresh), nil
	}

	if rate, ok := uc.fetchDirect(ctx, from, to); ok {
		return uc.quote(rate, domain.QuoteAPI), nil
	}

	base := uc.provider.BaseCurrency()
	if from != base && to != base {
		triangulated, err := uc.triangulate(ctx, from, to, base)
		if err != nil {
			return nil, err
		}
		if triangulated != nil {
			uc.recordRateLookup(string(triangulated.Source))
			return triangulated, nil
		}
	}

	if cached != nil {
		if err := uc.rateStore.IncrementErrorCount(ctx, from, to); err != nil {
			slog.Warn("failed to increment rate error count", "from", from, "to", to, "error", err.Error())
		}
		return uc.quote(cached.Rate, domain.QuoteStale), nil
	}

	return uc.quote(0, domain.QuoteNotFound), nil
}

// resolveLeg runs the same lookup chain as GetRate but never triangulates,
// so a leg cannot recurse into another triangulation.
func (uc *DefaultRateResolver) resolveLeg(ctx context.Context, from, to string) (*domain.RateQuote, error) {
	if from == to {
		return &domain.RateQuote{Rate: 1.0, Source: domain.QuoteFresh}, nil
	}

	cached, err := uc.lookupCached(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if cached != nil && !cached.Expired(uc.clock.Now()) {
		return &domain.RateQuote{Rate: cached.Rate, Source: domain.QuoteFresh}, nil
	}

	if rate, ok := uc.fetchDirect(ctx, from, to); ok {
		return &domain.RateQuote{Rate: rate, Source: domain.QuoteAPI}, nil
	}

	if cached != nil {
		if err := uc.rateStore.IncrementErrorCount(ctx, from, to); err != nil {
			slog.Warn("failed to increment rate error count", "from", from, "to", to, "error", err.Error())
		}
		return &domain.RateQuote{Rate: cached.Rate, Source: domain.QuoteStale}, nil
	}

	return &domain.RateQuote{Source: domain.QuoteNotFound}, nil
}

// triangulate derives rate(from,to) as rate(from,base) * rate(base,to).
// Either leg resolving to not_found kills the whole derivation; the combined
// source is the weakest leg: stale beats api beats fresh. Returns nil when
// the pair cannot be derived.
func (uc *DefaultRateResolver) triangulate(ctx context.Context, from, to, base string) (*domain.RateQuote, error) {
	legFrom, err := uc.resolveLeg(ctx, from, base)
	if err != nil {
		return nil, err
	}
	if legFrom.Source == domain.QuoteNotFound {
		return nil, nil
	}

	legTo, err := uc.resolveLeg(ctx, base, to)
	if err != nil {
		return nil, err
	}
	if legTo.Source == domain.QuoteNotFound {
		return nil, nil
	}

	rate := decimal.NewFromFloat(legFrom.Rate).
		Mul(decimal.NewFromFloat(legTo.Rate)).
		InexactFloat64()
	source := combineLegSources(legFrom.Source, legTo.Source)

	// Persist only when a leg actually went upstream just now. A stale
	// derivation is not upstream truth, and a fresh one is already covered
	// by its leg rows.
	if source == domain.QuoteAPI {
		uc.storePair(ctx, from, to, rate, domain.RateSourceAPI)
		uc.storeInverse(ctx, from, to, rate, domain.RateSourceAPI)
	}

	return &domain.RateQuote{Rate: rate, Source: source}, nil
}

func combineLegSources(a, b domain.QuoteSource) domain.QuoteSource {
	if a == domain.QuoteStale || b == domain.QuoteStale {
		return domain.QuoteStale
	}
	if a == domain.QuoteAPI || b == domain.QuoteAPI {
		return domain.QuoteAPI
	}
	return domain.QuoteFresh
}

// fetchDirect pulls everything the provider quotes against from and, when
// the wanted pair is present, caches it together with its inverse. False
// covers both fetch failure and an unquoted pair; the caller falls through
// to triangulation either way.
func (uc *DefaultRateResolver) fetchDirect(ctx context.Context, from, to string) (float64, bool) {
	rates, err := uc.fetchAll(ctx, from)
	if err != nil {
		slog.Warn("rate fetch failed", "base", from, "error", err.Error())
		return 0, false
	}

	rate, ok := rates[to]
	if !ok {
		return 0, false
	}

	uc.storePair(ctx, from, to, rate, domain.RateSourceAPI)
	uc.storeInverse(ctx, from, to, rate, domain.RateSourceAPI)
	return rate, true
}

func (uc *DefaultRateResolver) fetchAll(ctx context.Context, base string) (map[string]float64, error) {
	start := time.Now()
	rates, err := uc.provider.FetchAll(ctx, base)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	uc.recordRateFetch(uc.provider.GetName(), outcome, time.Since(start).Seconds())

	return rates, err
}

func (uc *DefaultRateResolver) lookupCached(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	cached, err := uc.rateStore.Lookup(ctx, from, to)
	if errors.Is(err, domain.ErrRateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// storePair upserts with a fresh TTL. Losing the write is tolerable, the
// resolved quote is still returned.
func (uc *DefaultRateResolver) storePair(ctx context.Context, from, to string, rate float64, source domain.RateSource) {
	now := uc.clock.Now()
	row := &domain.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		FetchedAt:    now,
		ExpiresAt:    now.Add(uc.ttl),
		IsStale:      false,
		Source:       source,
		ErrorCount:   0,
	}
	if err := uc.rateStore.Upsert(ctx, row); err != nil {
		slog.Error("failed to upsert exchange rate", "from", from, "to", to, "error", err.Error())
	}
}

// storeInverse writes (to,from) = 1/rate as a best-effort secondary row.
// Inverse rows drift independently afterwards.
func (uc *DefaultRateResolver) storeInverse(ctx context.Context, from, to string, rate float64, source domain.RateSource) {
	if rate == 0 {
		return
	}
	inverse := decimal.NewFromInt(1).
		Div(decimal.NewFromFloat(rate)).
		InexactFloat64()
	uc.storePair(ctx, to, from, inverse, source)
}

func (uc *DefaultRateResolver) quote(rate float64, source domain.QuoteSource) *domain.RateQuote {
	uc.recordRateLookup(string(source))
	return &domain.RateQuote{Rate: rate, Source: source}
}
