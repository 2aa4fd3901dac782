package domain

import (
	"context"
	"time"
)

// Budget caps spending for exactly one category or one tag over a calendar
// month. Period is always the first of the month at UTC midnight.
type Budget struct {
	ID         string
	OwnerID    string
	CategoryID *string
	TagID      *string
	Amount     float64
	Period     time.Time
}

// Valid reports whether exactly one of CategoryID/TagID is set and the limit
// is positive.
func (b *Budget) Valid() bool {
	hasCategory := b.CategoryID != nil && *b.CategoryID != ""
	hasTag := b.TagID != nil && *b.TagID != ""
	return hasCategory != hasTag && b.Amount > 0
}

// PeriodWindow returns the half-open interval [Period, Period+1 month).
func (b *Budget) PeriodWindow() (time.Time, time.Time) {
	from := NormalizePeriod(b.Period)
	return from, from.AddDate(0, 1, 0)
}

func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type BudgetRepository interface {
	CreateBudget(ctx context.Context, budget *Budget) error
	GetBudgetByID(ctx context.Context, budgetID string) (*Budget, error)
	GetBudgetsByOwnerID(ctx context.Context, ownerID string) ([]*Budget, error)
}
