package rateapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/rateapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2025-06-01","rates":{"eur":0.92,"GBP":0.79,"XXX":-1,"YYY":0}}`))
	}))
	defer server.Close()

	provider := rateapi.NewProvider(server.URL, "USD", time.Second)
	rates, err := provider.FetchAll(context.Background(), "usd")

	require.NoError(t, err)
	assert.Equal(t, "/latest?base=USD", gotPath)
	// Currency codes are coerced to upper case, junk rates are dropped.
	assert.Equal(t, map[string]float64{"EUR": 0.92, "GBP": 0.79}, rates)
}

func TestFetchAll_BaseMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"EUR","rates":{"USD":1.086}}`))
	}))
	defer server.Close()

	provider := rateapi.NewProvider(server.URL, "USD", time.Second)
	_, err := provider.FetchAll(context.Background(), "USD")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchAll_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := rateapi.NewProvider(server.URL, "USD", time.Second)
	_, err := provider.FetchAll(context.Background(), "USD")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchAll_EmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	provider := rateapi.NewProvider(server.URL, "USD", time.Second)
	_, err := provider.FetchAll(context.Background(), "USD")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchAll_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	provider := rateapi.NewProvider(server.URL, "USD", time.Second)
	_, err := provider.FetchAll(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rates response")
}

func TestNewProvider_Defaults(t *testing.T) {
	provider := rateapi.NewProvider("https://api.example.com/", "usd", 0)

	assert.Equal(t, "USD", provider.BaseCurrency())
	assert.Equal(t, "openrates", provider.GetName())
}
