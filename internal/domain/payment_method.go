package domain

import "context"

type PaymentMethod struct {
	ID        string
	OwnerID   string
	Currency  string
	IsDefault bool
	IsActive  bool
}

type PaymentMethodRepository interface {
	CreatePaymentMethod(ctx context.Context, method *PaymentMethod) error
	GetPaymentMethodByID(ctx context.Context, methodID string) (*PaymentMethod, error)
	GetPaymentMethodsByOwnerID(ctx context.Context, ownerID string) ([]*PaymentMethod, error)
	// DistinctActiveCurrencies lists every currency used by at least one
	// active payment method. Feeds the periodic rate refresh.
	DistinctActiveCurrencies(ctx context.Context) ([]string, error)
}
