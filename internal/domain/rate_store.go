package domain

import (
	"context"
	"time"
)

type RateStore interface {
	// Lookup returns the cached rate for the ordered pair or ErrRateNotFound.
	Lookup(ctx context.Context, from, to string) (*ExchangeRate, error)
	// Upsert writes the rate with last-write-wins semantics on the pair key.
	Upsert(ctx context.Context, rate *ExchangeRate) error
	// MarkExpiredStale flags every row with expiresAt <= now and returns how
	// many rows were flagged.
	MarkExpiredStale(ctx context.Context, now time.Time) (int64, error)
	IncrementErrorCount(ctx context.Context, from, to string) error
	ListPairs(ctx context.Context) ([]CurrencyPair, error)
	CountStale(ctx context.Context) (int64, error)
}
