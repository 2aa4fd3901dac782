package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	ratedto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/rate"
)

// RefreshAll re-fetches every ordered pair over the given currencies with one
// upstream call per base currency. A failed pair is reported and counted
// against the cached row, never aborts the sweep.
func (uc *DefaultRateResolver) RefreshAll(ctx context.Context, currencies []string) (*ratedto.RefreshReport, error) {
	report := &ratedto.RefreshReport{}

	seen := make(map[string]bool, len(currencies))
	ordered := make([]string, 0, len(currencies))
	for _, currency := range currencies {
		currency = strings.ToUpper(strings.TrimSpace(currency))
		if currency == "" || seen[currency] {
			continue
		}
		seen[currency] = true
		ordered = append(ordered, currency)
	}

	for _, from := range ordered {
		rates, err := uc.fetchAll(ctx, from)
		if err != nil {
			slog.Warn("rate refresh fetch failed", "base", from, "error", err.Error())
		}

		for _, to := range ordered {
			if to == from {
				continue
			}
			if err != nil {
				uc.failPair(ctx, report, from, to, err)
				continue
			}
			rate, ok := rates[to]
			if !ok {
				uc.failPair(ctx, report, from, to, fmt.Errorf("%w: %s is not quoted against %s", domain.ErrRateUnavailable, to, from))
				continue
			}

			uc.storePair(ctx, from, to, rate, domain.RateSourceAPI)
			report.Refreshed++
			report.Outcomes = append(report.Outcomes, ratedto.PairOutcome{
				From:    from,
				To:      to,
				Outcome: ratedto.RefreshOutcomeRefreshed,
			})
			uc.recordRefreshedPair(ratedto.RefreshOutcomeRefreshed)
		}
	}

	return report, nil
}

func (uc *DefaultRateResolver) failPair(ctx context.Context, report *ratedto.RefreshReport, from, to string, cause error) {
	if err := uc.rateStore.IncrementErrorCount(ctx, from, to); err != nil {
		slog.Warn("failed to increment rate error count", "from", from, "to", to, "error", err.Error())
	}
	report.Failed++
	report.Outcomes = append(report.Outcomes, ratedto.PairOutcome{
		From:    from,
		To:      to,
		Outcome: ratedto.RefreshOutcomeFailed,
		Error:   cause.Error(),
	})
	uc.recordRefreshedPair(ratedto.RefreshOutcomeFailed)
}

// MarkStaleRates flags every expired row and reports how many flipped.
func (uc *DefaultRateResolver) MarkStaleRates(ctx context.Context) (int64, error) {
	marked, err := uc.rateStore.MarkExpiredStale(ctx, uc.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired rates stale: %w", err)
	}
	uc.recordMarkedStale(marked)
	return marked, nil
}

// SetManualRate pins a user-entered rate for a pair. The row carries the
// regular TTL, so a manual rate ages out like a fetched one.
func (uc *DefaultRateResolver) SetManualRate(ctx context.Context, from, to string, rate float64) error {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == "" || to == "" || from == to {
		return fmt.Errorf("%w: pair %q/%q", domain.ErrInvalidRate, from, to)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: rate must be a positive finite number, got %v", domain.ErrInvalidRate, rate)
	}

	now := uc.clock.Now()
	row := &domain.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		FetchedAt:    now,
		ExpiresAt:    now.Add(uc.ttl),
		IsStale:      false,
		Source:       domain.RateSourceManual,
		ErrorCount:   0,
	}
	if err := uc.rateStore.Upsert(ctx, row); err != nil {
		return fmt.Errorf("failed to store manual rate %s/%s: %w", from, to, err)
	}

	uc.storeInverse(ctx, from, to, rate, domain.RateSourceManual)
	return nil
}
