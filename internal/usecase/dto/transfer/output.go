package transferdto

import "github.com/mkraev/fintrack-ledger-service/internal/domain"

type TransferResult struct {
	SourceTransaction *domain.Transaction
	DestTransaction   *domain.Transaction
	Rate              float64
	RateSource        domain.QuoteSource
}

type ListTransfersOutput struct {
	Transfers []*domain.Transaction
	Total     int64
}

const (
	ViolationMissingLink   = "missing_link"
	ViolationDanglingLink  = "dangling_link"
	ViolationNotReciprocal = "not_reciprocal"
	ViolationSameSign      = "same_sign"
)

type IntegrityViolation struct {
	TransactionID       string
	LinkedTransactionID string
	Reason              string
}

type IntegrityReport struct {
	CheckedTransfers int
	Violations       []IntegrityViolation
}

func (r *IntegrityReport) Clean() bool {
	return len(r.Violations) == 0
}
