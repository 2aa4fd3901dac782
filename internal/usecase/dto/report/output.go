package reportdto

import "time"

type BalanceOutput struct {
	Balance float64
	// StaleRates warns that at least one cached exchange rate is past its
	// TTL. Reads never fail on staleness, they only flag it.
	StaleRates bool
}

type BudgetSpentOutput struct {
	Spent      float64
	From       time.Time
	To         time.Time
	StaleRates bool
}

type MethodBreakdownRow struct {
	PaymentMethodID string
	NativeAmount    float64
	ConvertedAmount float64
	PercentOfLimit  float64
}

type BudgetBreakdownOutput struct {
	BudgetID   string
	Limit      float64
	Rows       []MethodBreakdownRow
	StaleRates bool
}

type MethodBalanceOutput struct {
	PaymentMethodID string
	Currency        string
	Balance         float64
}
