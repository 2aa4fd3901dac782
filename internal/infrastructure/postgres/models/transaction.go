package models

import (
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
)

type TransactionModel struct {
	ID                  string                 `gorm:"primaryKey;type:uuid"`
	OwnerID             string                 `gorm:"type:uuid;not null;index:idx_tx_owner"`
	PaymentMethodID     string                 `gorm:"type:uuid;not null;index:idx_tx_payment_method"`
	PaymentMethod       PaymentMethodModel     `gorm:"foreignKey:PaymentMethodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CategoryID          *string                `gorm:"type:uuid;index:idx_tx_category"`
	Type                domain.TransactionType `gorm:"not null;index:idx_tx_type"`
	Amount              float64                `gorm:"not null"`
	NativeAmount        float64                `gorm:"not null"`
	ExchangeRate        float64                `gorm:"not null"`
	BaseCurrency        string                 `gorm:"not null"`
	LinkedTransactionID *string                `gorm:"type:uuid"`
	LinkedTransaction   *TransactionModel      `gorm:"foreignKey:LinkedTransactionID;references:ID;constraint:OnDelete:SET NULL;"`
	Description         string
	Date                time.Time `gorm:"not null;index:idx_tx_date"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionTagModel mirrors the tag links written by the tagging layer.
// The ledger only reads it for budget aggregation by tag.
type TransactionTagModel struct {
	TransactionID string `gorm:"primaryKey;type:uuid"`
	TagID         string `gorm:"primaryKey;type:uuid"`
}

func (TransactionTagModel) TableName() string {
	return "transaction_tags"
}
