package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/metrics"
	"github.com/mkraev/fintrack-ledger-service/internal/usecase"
)

const (
	defaultRefreshInterval = 24 * time.Hour
	defaultSweepInterval   = time.Hour
)

// BackgroundTasks owns the periodic rate maintenance: refreshing every pair
// of currencies in active use and sweeping expired rows into the stale state.
// Both loops are idempotent, a skipped or doubled tick changes nothing.
type BackgroundTasks struct {
	RateResolver      usecase.RateResolver
	PaymentMethodRepo domain.PaymentMethodRepository
	RateStore         domain.RateStore
	Metrics           *metrics.LedgerMetrics

	RefreshInterval time.Duration
	SweepInterval   time.Duration

	logger *slog.Logger
}

func NewBackgroundTasks(
	rateResolver usecase.RateResolver,
	paymentMethodRepo domain.PaymentMethodRepository,
	rateStore domain.RateStore,
	refreshInterval, sweepInterval time.Duration,
	logger *slog.Logger,
) *BackgroundTasks {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		RateResolver:      rateResolver,
		PaymentMethodRepo: paymentMethodRepo,
		RateStore:         rateStore,
		RefreshInterval:   refreshInterval,
		SweepInterval:     sweepInterval,
		logger:            logger,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRateRefresh(ctx)
	go bt.startStaleSweep(ctx)
}

func (bt *BackgroundTasks) startRateRefresh(ctx context.Context) {
	ticker := time.NewTicker(bt.RefreshInterval)
	defer ticker.Stop()

	bt.logger.Info("Starting rate refresh loop", "interval", bt.RefreshInterval)
	for {
		select {
		case <-ctx.Done():
			bt.logger.Info("Stopping rate refresh loop")
			return
		case <-ticker.C:
			currencies, err := bt.PaymentMethodRepo.DistinctActiveCurrencies(ctx)
			if err != nil {
				bt.logger.Error("Failed to list active currencies", "error", err)
				continue
			}
			if len(currencies) < 2 {
				continue
			}
			report, err := bt.RateResolver.RefreshAll(ctx, currencies)
			if err != nil {
				bt.logger.Error("Failed to refresh rates", "error", err)
				continue
			}
			bt.logger.Info("Refreshed exchange rates",
				"refreshed", report.Refreshed,
				"failed", report.Failed)
		}
	}
}

func (bt *BackgroundTasks) startStaleSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	bt.logger.Info("Starting stale rate sweep", "interval", bt.SweepInterval)
	for {
		select {
		case <-ctx.Done():
			bt.logger.Info("Stopping stale rate sweep")
			return
		case <-ticker.C:
			marked, err := bt.RateResolver.MarkStaleRates(ctx)
			if err != nil {
				bt.logger.Error("Failed to sweep expired rates", "error", err)
				continue
			}
			if marked > 0 {
				bt.logger.Info("Marked expired rates stale", "count", marked)
			}
			bt.updateStaleGauge(ctx)
		}
	}
}

func (bt *BackgroundTasks) updateStaleGauge(ctx context.Context) {
	if bt.Metrics == nil {
		return
	}
	count, err := bt.RateStore.CountStale(ctx)
	if err != nil {
		bt.logger.Error("Failed to count stale rates", "error", err)
		return
	}
	bt.Metrics.SetStaleRatesCount(count)
}
