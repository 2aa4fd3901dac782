package domain

import "context"

// RateProvider talks to one external quote source. FetchAll returns every
// rate the provider quotes against the given base currency, already validated
// and coerced; provider response shapes never leak upward.
type RateProvider interface {
	FetchAll(ctx context.Context, base string) (map[string]float64, error)
	// BaseCurrency is the fixed base the provider quotes everything against.
	// Pairs not involving it are resolved by triangulation.
	BaseCurrency() string
	GetName() string
}
