package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestResolver(store *fakeRateStore, provider *fakeRateProvider, clock *fakeClock) *usecase.DefaultRateResolver {
	return usecase.NewDefaultRateResolver(store, provider, clock, 24*time.Hour)
}

func TestGetRate_SameCurrency(t *testing.T) {
	store := newFakeRateStore()
	provider := newFakeRateProvider("USD")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "usd", "USD", testTime)

	require.NoError(t, err)
	assert.Equal(t, 1.0, quote.Rate)
	assert.Equal(t, domain.QuoteFresh, quote.Source)
	assert.Empty(t, provider.calls)
}

func TestGetRate_FreshCache(t *testing.T) {
	store := newFakeRateStore()
	store.put(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         0.92,
		FetchedAt:    testTime.Add(-time.Hour),
		ExpiresAt:    testTime.Add(time.Hour),
		Source:       domain.RateSourceAPI,
	})
	provider := newFakeRateProvider("USD")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)

	require.NoError(t, err)
	assert.Equal(t, 0.92, quote.Rate)
	assert.Equal(t, domain.QuoteFresh, quote.Source)
	assert.Empty(t, provider.calls, "fresh cache must not trigger a fetch")
}

func TestGetRate_FetchStoresPairAndInverse(t *testing.T) {
	store := newFakeRateStore()
	provider := newFakeRateProvider("USD")
	provider.responses["USD"] = map[string]float64{"EUR": 0.92}
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)

	require.NoError(t, err)
	assert.Equal(t, 0.92, quote.Rate)
	assert.Equal(t, domain.QuoteAPI, quote.Source)

	direct, err := store.Lookup(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.92, direct.Rate)
	assert.Equal(t, domain.RateSourceAPI, direct.Source)
	assert.Equal(t, testTime.Add(24*time.Hour), direct.ExpiresAt)

	inverse, err := store.Lookup(context.Background(), "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/0.92, inverse.Rate, 1e-9)
	assert.Equal(t, domain.RateSourceAPI, inverse.Source)
}

func TestGetRate_ExpiredCacheRefetches(t *testing.T) {
	store := newFakeRateStore()
	store.put(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         0.92,
		FetchedAt:    testTime.Add(-48 * time.Hour),
		ExpiresAt:    testTime.Add(-24 * time.Hour),
		Source:       domain.RateSourceAPI,
	})
	provider := newFakeRateProvider("USD")
	provider.responses["USD"] = map[string]float64{"EUR": 0.95}
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)

	require.NoError(t, err)
	assert.Equal(t, 0.95, quote.Rate)
	assert.Equal(t, domain.QuoteAPI, quote.Source)
}

func TestGetRate_StaleFallback(t *testing.T) {
	store := newFakeRateStore()
	store.put(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         0.92,
		FetchedAt:    testTime.Add(-48 * time.Hour),
		ExpiresAt:    testTime.Add(-24 * time.Hour),
		Source:       domain.RateSourceAPI,
	})
	provider := newFakeRateProvider("USD")
	provider.errs["USD"] = errors.New("connection refused")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)

	require.NoError(t, err)
	assert.Equal(t, 0.92, quote.Rate)
	assert.Equal(t, domain.QuoteStale, quote.Source)
	assert.Equal(t, 1, store.increments[pairKey("USD", "EUR")])
}

func TestGetRate_NotFound(t *testing.T) {
	store := newFakeRateStore()
	provider := newFakeRateProvider("USD")
	provider.errs["USD"] = errors.New("connection refused")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)

	require.NoError(t, err, "an unresolvable pair is an answer, not an error")
	assert.Equal(t, domain.QuoteNotFound, quote.Source)
	assert.Zero(t, quote.Rate)
}

func TestGetRate_Triangulates(t *testing.T) {
	store := newFakeRateStore()
	provider := newFakeRateProvider("USD")
	// UAH is quoted against USD only; EUR comes from the USD response.
	provider.responses["UAH"] = map[string]float64{"USD": 0.024}
	provider.responses["USD"] = map[string]float64{"EUR": 0.92, "UAH": 41.6}
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "UAH", "EUR", testTime)

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteAPI, quote.Source)
	assert.InDelta(t, 0.024*0.92, quote.Rate, 1e-9)

	// The derived pair and its inverse are cached for the next lookup.
	derived, err := store.Lookup(context.Background(), "UAH", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.024*0.92, derived.Rate, 1e-9)
	assert.Equal(t, domain.RateSourceAPI, derived.Source)

	inverse, err := store.Lookup(context.Background(), "EUR", "UAH")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/(0.024*0.92), inverse.Rate, 1e-6)

	// Same derivation the caller could do with two direct lookups.
	legFrom, err := resolver.GetRate(context.Background(), "UAH", "USD", testTime)
	require.NoError(t, err)
	legTo, err := resolver.GetRate(context.Background(), "USD", "EUR", testTime)
	require.NoError(t, err)
	assert.InDelta(t, legFrom.Rate*legTo.Rate, quote.Rate, 1e-6)
}

func TestGetRate_TriangulationStaleLeg(t *testing.T) {
	store := newFakeRateStore()
	store.put(&domain.ExchangeRate{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Rate:         1.08,
		FetchedAt:    testTime.Add(-48 * time.Hour),
		ExpiresAt:    testTime.Add(-time.Hour),
		Source:       domain.RateSourceAPI,
	})
	store.put(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "GBP",
		Rate:         0.79,
		FetchedAt:    testTime.Add(-time.Hour),
		ExpiresAt:    testTime.Add(time.Hour),
		Source:       domain.RateSourceAPI,
	})
	provider := newFakeRateProvider("USD")
	provider.errs["EUR"] = errors.New("connection refused")
	provider.errs["USD"] = errors.New("connection refused")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "EUR", "GBP", testTime)

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStale, quote.Source, "one stale leg degrades the whole derivation")
	assert.InDelta(t, 1.08*0.79, quote.Rate, 1e-9)

	// Stale derivations are never written back.
	_, err = store.Lookup(context.Background(), "EUR", "GBP")
	assert.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestGetRate_TriangulationDeadLeg(t *testing.T) {
	store := newFakeRateStore()
	provider := newFakeRateProvider("USD")
	provider.errs["EUR"] = errors.New("connection refused")
	provider.errs["USD"] = errors.New("connection refused")
	resolver := newTestResolver(store, provider, &fakeClock{now: testTime})

	quote, err := resolver.GetRate(context.Background(), "EUR", "GBP", testTime)

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteNotFound, quote.Source)
}
