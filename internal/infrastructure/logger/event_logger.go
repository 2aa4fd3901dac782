package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type TransferCreatedEvent struct {
	ID                  uint `gorm:"primaryKey"`
	OwnerID             string
	SourceTransactionID string
	DestTransactionID   string
	SourceMethodID      string
	DestMethodID        string
	Amount              float64
	SourceCurrency      string
	DestCurrency        string
	ConvertedAmount     float64
	ExchangeRate        float64
	RateSource          string
	Timestamp           time.Time
}

type TransferDeletedEvent struct {
	ID                  uint `gorm:"primaryKey"`
	OwnerID             string
	SourceTransactionID string
	DestTransactionID   string
	Timestamp           time.Time
}

type TransferFailedEvent struct {
	ID             uint `gorm:"primaryKey"`
	OwnerID        string
	SourceMethodID string
	DestMethodID   string
	Amount         float64
	Reason         string
	Timestamp      time.Time
}

type TransferEventLogger interface {
	LogTransferCreated(ctx context.Context, event TransferCreatedEvent) error
	LogTransferDeleted(ctx context.Context, event TransferDeletedEvent) error
	LogTransferFailed(ctx context.Context, event TransferFailedEvent) error
}

type PGTransferEventLogger struct {
	db *gorm.DB
}

func NewPGTransferEventLogger(db *gorm.DB) *PGTransferEventLogger {
	return &PGTransferEventLogger{db: db}
}

func (l *PGTransferEventLogger) LogTransferCreated(ctx context.Context, event TransferCreatedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGTransferEventLogger) LogTransferDeleted(ctx context.Context, event TransferDeletedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGTransferEventLogger) LogTransferFailed(ctx context.Context, event TransferFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
