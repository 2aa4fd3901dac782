package transferdto

import "time"

type CreateTransferInput struct {
	OwnerID        string
	SourceMethodID string
	DestMethodID   string
	// Amount is in the source payment method currency, always positive.
	Amount       float64
	BaseCurrency string
	Date         time.Time
	Description  string
}

type ListTransfersInput struct {
	OwnerID string
	Page    int64
	Limit   int64
}
