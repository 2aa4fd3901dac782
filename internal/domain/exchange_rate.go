package domain

import "time"

type RateSource string

const (
	RateSourceSeed   RateSource = "seed"
	RateSourceManual RateSource = "manual"
	RateSourceAPI    RateSource = "api"
)

type QuoteSource string

const (
	QuoteFresh    QuoteSource = "fresh"
	QuoteStale    QuoteSource = "stale"
	QuoteAPI      QuoteSource = "api"
	QuoteNotFound QuoteSource = "not_found"
)

// ExchangeRate is one cached quote for an ordered currency pair. At most one
// row exists per (from,to); the inverse pair is stored as its own row and may
// drift after the fact.
type ExchangeRate struct {
	FromCurrency string
	ToCurrency   string
	Rate         float64
	FetchedAt    time.Time
	ExpiresAt    time.Time
	IsStale      bool
	Source       RateSource
	ErrorCount   int
}

func (r *ExchangeRate) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// RateQuote is the result of a resolver lookup. Rate is zero when Source is
// QuoteNotFound.
type RateQuote struct {
	Rate   float64
	Source QuoteSource
}

type CurrencyPair struct {
	From string
	To   string
}
