package domain

import "time"

type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single ledger entry. For income/expense rows Amount is the
// value converted to the owner's base currency and NativeAmount the value in
// the payment method's own currency. Transfer legs store the native value in
// both fields, sign-bearing: the source leg negative, the destination leg
// positive. ExchangeRate and BaseCurrency are frozen at creation and never
// recomputed from a live rate.
type Transaction struct {
	ID                  string
	OwnerID             string
	PaymentMethodID     string
	CategoryID          *string
	Type                TransactionType
	Amount              float64
	NativeAmount        float64
	ExchangeRate        float64
	BaseCurrency        string
	LinkedTransactionID *string
	Description         string
	Date                time.Time
	CreatedAt           time.Time
}

func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTransfer
}
