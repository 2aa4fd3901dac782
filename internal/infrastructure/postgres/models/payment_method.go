package models

import "time"

type PaymentMethodModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OwnerID   string `gorm:"type:uuid;not null;index:idx_pm_owner"`
	Currency  string `gorm:"not null"`
	IsDefault bool
	IsActive  bool `gorm:"index:idx_pm_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
