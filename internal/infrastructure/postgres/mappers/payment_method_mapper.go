package mappers

import (
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentMethod(model *models.PaymentMethodModel) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:        model.ID,
		OwnerID:   model.OwnerID,
		Currency:  model.Currency,
		IsDefault: model.IsDefault,
		IsActive:  model.IsActive,
	}
}

func ToGORMPaymentMethod(method *domain.PaymentMethod) *models.PaymentMethodModel {
	return &models.PaymentMethodModel{
		ID:        method.ID,
		OwnerID:   method.OwnerID,
		Currency:  method.Currency,
		IsDefault: method.IsDefault,
		IsActive:  method.IsActive,
	}
}
