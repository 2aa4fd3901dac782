package models

import "time"

type BudgetModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	OwnerID    string    `gorm:"type:uuid;not null;index:idx_budget_owner"`
	CategoryID *string   `gorm:"type:uuid"`
	TagID      *string   `gorm:"type:uuid"`
	Amount     float64   `gorm:"not null"`
	Period     time.Time `gorm:"not null;index:idx_budget_period"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (BudgetModel) TableName() string {
	return "budgets"
}
