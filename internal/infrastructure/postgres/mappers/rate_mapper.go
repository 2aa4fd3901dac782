package mappers

import (
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainRate(model *models.ExchangeRateModel) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrency: model.FromCurrency,
		ToCurrency:   model.ToCurrency,
		Rate:         model.Rate,
		FetchedAt:    model.FetchedAt,
		ExpiresAt:    model.ExpiresAt,
		IsStale:      model.IsStale,
		Source:       model.Source,
		ErrorCount:   model.ErrorCount,
	}
}

func ToGORMRate(rate *domain.ExchangeRate) *models.ExchangeRateModel {
	return &models.ExchangeRateModel{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		FetchedAt:    rate.FetchedAt,
		ExpiresAt:    rate.ExpiresAt,
		IsStale:      rate.IsStale,
		Source:       rate.Source,
		ErrorCount:   rate.ErrorCount,
	}
}
