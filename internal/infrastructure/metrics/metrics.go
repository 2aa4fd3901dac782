package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics holds every counter the ledger exports.
type LedgerMetrics struct {
	// Transfers
	TransfersCreatedTotal       prometheus.CounterVec
	TransfersCreatedAmountTotal prometheus.CounterVec
	TransfersDeletedTotal       prometheus.Counter
	TransferErrorsTotal         prometheus.CounterVec
	TransferCreateDuration      prometheus.HistogramVec

	// Rate resolution
	RateLookupsTotal      prometheus.CounterVec
	RateFetchesTotal      prometheus.CounterVec
	RateFetchDuration     prometheus.HistogramVec
	RefreshedPairsTotal   prometheus.CounterVec
	RatesMarkedStaleTotal prometheus.Counter
	StaleRatesCount       prometheus.Gauge

	// Integrity
	IntegrityViolationsFound prometheus.Counter
}

func NewLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		TransfersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfers_created_total",
				Help: "Total number of transfer pairs created",
			},
			[]string{"source_currency", "dest_currency"},
		),

		TransfersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfers_created_amount_total",
				Help: "Total amount moved, in the source leg currency",
			},
			[]string{"source_currency"},
		),

		TransfersDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transfers_deleted_total",
				Help: "Total number of transfer pairs deleted",
			},
		),

		TransferErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfer_errors_total",
				Help: "Total number of rejected or failed transfer operations",
			},
			[]string{"error_type"},
		),

		TransferCreateDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_transfer_create_duration_seconds",
				Help:    "Time to create a transfer pair, rate resolution included",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"status"},
		),

		RateLookupsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rate_lookups_total",
				Help: "Rate resolutions by result source (fresh/stale/api/not_found)",
			},
			[]string{"source"},
		),

		RateFetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rate_fetches_total",
				Help: "Upstream provider calls by outcome",
			},
			[]string{"provider", "outcome"},
		),

		RateFetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_rate_fetch_duration_seconds",
				Help:    "Upstream provider call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
			},
			[]string{"provider"},
		),

		RefreshedPairsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_refreshed_pairs_total",
				Help: "Pairs touched by refreshAll, by outcome (refreshed/failed)",
			},
			[]string{"outcome"},
		),

		RatesMarkedStaleTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_rates_marked_stale_total",
				Help: "Rows flagged stale by the periodic sweep",
			},
		),

		StaleRatesCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_stale_rates_count",
				Help: "Current number of stale rate rows",
			},
		),

		IntegrityViolationsFound: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_integrity_violations_found_total",
				Help: "Transfer pair violations found by integrity checks",
			},
		),
	}
}

func (m *LedgerMetrics) RecordTransferCreated(sourceCurrency, destCurrency string, amount float64) {
	m.TransfersCreatedTotal.WithLabelValues(sourceCurrency, destCurrency).Inc()
	m.TransfersCreatedAmountTotal.WithLabelValues(sourceCurrency).Add(amount)
}

func (m *LedgerMetrics) RecordTransferDeleted() {
	m.TransfersDeletedTotal.Inc()
}

func (m *LedgerMetrics) RecordTransferError(errorType string) {
	m.TransferErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *LedgerMetrics) RecordTransferCreateDuration(status string, durationSeconds float64) {
	m.TransferCreateDuration.WithLabelValues(status).Observe(durationSeconds)
}

func (m *LedgerMetrics) RecordRateLookup(source string) {
	m.RateLookupsTotal.WithLabelValues(source).Inc()
}

func (m *LedgerMetrics) RecordRateFetch(provider, outcome string, durationSeconds float64) {
	m.RateFetchesTotal.WithLabelValues(provider, outcome).Inc()
	m.RateFetchDuration.WithLabelValues(provider).Observe(durationSeconds)
}

func (m *LedgerMetrics) RecordRefreshedPair(outcome string) {
	m.RefreshedPairsTotal.WithLabelValues(outcome).Inc()
}

func (m *LedgerMetrics) RecordMarkedStale(count int64) {
	m.RatesMarkedStaleTotal.Add(float64(count))
}

func (m *LedgerMetrics) SetStaleRatesCount(count int64) {
	m.StaleRatesCount.Set(float64(count))
}

func (m *LedgerMetrics) RecordIntegrityViolations(count int) {
	m.IntegrityViolationsFound.Add(float64(count))
}
