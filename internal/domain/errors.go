package domain

import "errors"

var (
	ErrRateNotFound           = errors.New("exchange rate not found")
	ErrRateUnavailable        = errors.New("no exchange rate available")
	ErrInvalidRate            = errors.New("invalid exchange rate")
	ErrFetchFailed            = errors.New("rate provider fetch failed")
	ErrInvalidTransfer        = errors.New("invalid transfer")
	ErrTransferNotFound       = errors.New("transfer not found")
	ErrIntegrityViolation     = errors.New("transfer pair integrity violation")
	ErrPaymentMethodNotFound  = errors.New("payment method not found")
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrInvalidBudget          = errors.New("budget must reference exactly one of category or tag")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
