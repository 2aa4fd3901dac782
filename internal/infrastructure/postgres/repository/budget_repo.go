package repository

import (
	"context"
	"errors"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBudgetRepository struct {
	DB *gorm.DB
}

func NewDefaultBudgetRepository(db *gorm.DB) *DefaultBudgetRepository {
	return &DefaultBudgetRepository{DB: db}
}

func (r *DefaultBudgetRepository) CreateBudget(ctx context.Context, budget *domain.Budget) error {
	model := mappers.ToGORMBudget(budget)
	return r.DB.WithContext(ctx).Create(model).Error
}

func (r *DefaultBudgetRepository) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	var model models.BudgetModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", budgetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBudgetNotFound
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainBudget(&model), nil
}

func (r *DefaultBudgetRepository) GetBudgetsByOwnerID(ctx context.Context, ownerID string) ([]*domain.Budget, error) {
	var rows []models.BudgetModel
	if err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("period DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	budgets := make([]*domain.Budget, 0, len(rows))
	for i := range rows {
		budgets = append(budgets, mappers.ToDomainBudget(&rows[i]))
	}
	return budgets, nil
}
