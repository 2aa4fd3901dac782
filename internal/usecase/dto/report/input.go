package reportdto

import "time"

type BudgetSpentInput struct {
	OwnerID    string
	CategoryID *string
	TagID      *string
	// Period may be any moment inside the month; it is normalized to the
	// first of the month.
	Period time.Time
}
