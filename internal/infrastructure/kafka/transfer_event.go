package kafka

type TransferEvent struct {
	// EventID is stamped by the publisher so consumers can dedupe
	// at-least-once deliveries.
	EventID             string  `json:"event_id"`
	SourceTransactionID string  `json:"source_transaction_id"`
	DestTransactionID   string  `json:"dest_transaction_id"`
	OwnerID             string  `json:"owner_id"`
	Status              string  `json:"status"`
	Amount              float64 `json:"amount"`
	SourceCurrency      string  `json:"source_currency"`
	DestCurrency        string  `json:"dest_currency"`
	ConvertedAmount     float64 `json:"converted_amount"`
	ExchangeRate        float64 `json:"exchange_rate"`
	Date                string  `json:"date"`
}

const (
	TransferEventCreated = "TRANSFER_CREATED"
	TransferEventDeleted = "TRANSFER_DELETED"
)
