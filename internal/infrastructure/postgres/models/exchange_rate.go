package models

import (
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
)

type ExchangeRateModel struct {
	ID           uint              `gorm:"primaryKey;autoIncrement"`
	FromCurrency string            `gorm:"uniqueIndex:idx_currency_pair;not null"`
	ToCurrency   string            `gorm:"uniqueIndex:idx_currency_pair;not null"`
	Rate         float64           `gorm:"not null"`
	FetchedAt    time.Time         `gorm:"not null"`
	ExpiresAt    time.Time         `gorm:"index:idx_rate_expires;not null"`
	IsStale      bool              `gorm:"index:idx_rate_stale"`
	Source       domain.RateSource `gorm:"not null"`
	ErrorCount   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}
