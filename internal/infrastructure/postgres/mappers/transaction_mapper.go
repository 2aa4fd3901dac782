package mappers

import (
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:                  model.ID,
		OwnerID:             model.OwnerID,
		PaymentMethodID:     model.PaymentMethodID,
		CategoryID:          model.CategoryID,
		Type:                model.Type,
		Amount:              model.Amount,
		NativeAmount:        model.NativeAmount,
		ExchangeRate:        model.ExchangeRate,
		BaseCurrency:        model.BaseCurrency,
		LinkedTransactionID: model.LinkedTransactionID,
		Description:         model.Description,
		Date:                model.Date,
		CreatedAt:           model.CreatedAt,
	}
}

func ToGORMTransaction(transaction *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                  transaction.ID,
		OwnerID:             transaction.OwnerID,
		PaymentMethodID:     transaction.PaymentMethodID,
		CategoryID:          transaction.CategoryID,
		Type:                transaction.Type,
		Amount:              transaction.Amount,
		NativeAmount:        transaction.NativeAmount,
		ExchangeRate:        transaction.ExchangeRate,
		BaseCurrency:        transaction.BaseCurrency,
		LinkedTransactionID: transaction.LinkedTransactionID,
		Description:         transaction.Description,
		Date:                transaction.Date,
		CreatedAt:           transaction.CreatedAt,
	}
}
