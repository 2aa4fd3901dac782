package mappers

import (
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainBudget(model *models.BudgetModel) *domain.Budget {
	return &domain.Budget{
		ID:         model.ID,
		OwnerID:    model.OwnerID,
		CategoryID: model.CategoryID,
		TagID:      model.TagID,
		Amount:     model.Amount,
		Period:     model.Period,
	}
}

func ToGORMBudget(budget *domain.Budget) *models.BudgetModel {
	return &models.BudgetModel{
		ID:         budget.ID,
		OwnerID:    budget.OwnerID,
		CategoryID: budget.CategoryID,
		TagID:      budget.TagID,
		Amount:     budget.Amount,
		Period:     domain.NormalizePeriod(budget.Period),
	}
}
