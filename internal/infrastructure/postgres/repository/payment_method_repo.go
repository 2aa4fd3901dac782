package repository

import (
	"context"
	"errors"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentMethodRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentMethodRepository(db *gorm.DB) *DefaultPaymentMethodRepository {
	return &DefaultPaymentMethodRepository{DB: db}
}

func (r *DefaultPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) error {
	model := mappers.ToGORMPaymentMethod(method)
	return r.DB.WithContext(ctx).Create(model).Error
}

func (r *DefaultPaymentMethodRepository) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	var model models.PaymentMethodModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", methodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainPaymentMethod(&model), nil
}

func (r *DefaultPaymentMethodRepository) GetPaymentMethodsByOwnerID(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error) {
	var rows []models.PaymentMethodModel
	if err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	methods := make([]*domain.PaymentMethod, 0, len(rows))
	for i := range rows {
		methods = append(methods, mappers.ToDomainPaymentMethod(&rows[i]))
	}
	return methods, nil
}

func (r *DefaultPaymentMethodRepository) DistinctActiveCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	err := r.DB.WithContext(ctx).
		Model(&models.PaymentMethodModel{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("currency", &currencies).Error
	if err != nil {
		return nil, err
	}

	return currencies, nil
}
