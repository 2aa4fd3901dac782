package domain

import (
	"context"
	"time"
)

// TypeSum is the per-type aggregate returned by SumAmountsByType.
type TypeSum struct {
	Type  TransactionType
	Total float64
}

// SpendingFilter selects non-transfer rows for budget aggregation.
// Exactly one of CategoryID or TagID is set.
type SpendingFilter struct {
	OwnerID    string
	CategoryID *string
	TagID      *string
	From       time.Time
	To         time.Time
}

type PaymentMethodSum struct {
	PaymentMethodID string
	NativeTotal     float64
	ConvertedTotal  float64
}

// TransferLink is one transfer row joined with the row its
// LinkedTransactionID points to. Partner fields are nil when the link is
// broken.
type TransferLink struct {
	ID                  string
	LinkedTransactionID *string
	Amount              float64
	PartnerID           *string
	PartnerLinkedID     *string
	PartnerAmount       *float64
}

type TransactionRepository interface {
	// CreateTransferPair inserts both legs and cross-links them in a single
	// transaction. Either both rows commit with mutual links or nothing is
	// written.
	CreateTransferPair(ctx context.Context, source, dest *Transaction) error
	// DeleteTransferPair removes both legs in a single transaction.
	DeleteTransferPair(ctx context.Context, firstID, secondID string) error
	GetTransactionByID(ctx context.Context, transactionID string) (*Transaction, error)
	GetTransfersByOwnerID(ctx context.Context, ownerID string, page, limit int64) ([]*Transaction, int64, error)
	FindTransferLinks(ctx context.Context, ownerID string) ([]*TransferLink, error)
	SumAmountsByType(ctx context.Context, ownerID string) ([]TypeSum, error)
	SumSpending(ctx context.Context, filter SpendingFilter) (float64, error)
	SumSpendingByPaymentMethod(ctx context.Context, filter SpendingFilter) ([]PaymentMethodSum, error)
	SumNativeByPaymentMethod(ctx context.Context, paymentMethodID string) (float64, error)
}
