package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRateStore struct {
	DB *gorm.DB
}

func NewDefaultRateStore(db *gorm.DB) *DefaultRateStore {
	return &DefaultRateStore{DB: db}
}

func (r *DefaultRateStore) Lookup(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	var model models.ExchangeRateModel
	err := r.DB.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", from, to).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRateNotFound
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainRate(&model), nil
}

// Upsert keeps at most one row per ordered pair. Concurrent writers race on
// which value wins, never on row identity.
func (r *DefaultRateStore) Upsert(ctx context.Context, rate *domain.ExchangeRate) error {
	model := mappers.ToGORMRate(rate)
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rate", "fetched_at", "expires_at", "is_stale", "source", "error_count", "updated_at",
			}),
		}).
		Create(model).Error
}

func (r *DefaultRateStore) MarkExpiredStale(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.ExchangeRateModel{}).
		Where("expires_at <= ? AND is_stale = ?", now, false).
		Update("is_stale", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *DefaultRateStore) IncrementErrorCount(ctx context.Context, from, to string) error {
	return r.DB.WithContext(ctx).
		Model(&models.ExchangeRateModel{}).
		Where("from_currency = ? AND to_currency = ?", from, to).
		Update("error_count", gorm.Expr("error_count + 1")).Error
}

func (r *DefaultRateStore) ListPairs(ctx context.Context) ([]domain.CurrencyPair, error) {
	var rows []models.ExchangeRateModel
	if err := r.DB.WithContext(ctx).
		Select("from_currency", "to_currency").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	pairs := make([]domain.CurrencyPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, domain.CurrencyPair{From: row.FromCurrency, To: row.ToCurrency})
	}
	return pairs, nil
}

func (r *DefaultRateStore) CountStale(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.ExchangeRateModel{}).
		Where("is_stale = ?", true).
		Count(&count).Error
	return count, err
}
