package usecase

import (
	"context"
	"fmt"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	reportdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/report"
)

// GetBudgetSpent totals non-transfer spending for one category or tag inside
// a calendar month. Moving money between methods is never spending, transfer
// rows stay out of the sum.
func (reportUc *DefaultReportUsecase) GetBudgetSpent(ctx context.Context, input *reportdto.BudgetSpentInput) (*reportdto.BudgetSpentOutput, error) {
	if err := validateSpendingTarget(input.CategoryID, input.TagID); err != nil {
		return nil, err
	}

	from := domain.NormalizePeriod(input.Period)
	to := from.AddDate(0, 1, 0)

	spent, err := reportUc.transactionRepo.SumSpending(ctx, domain.SpendingFilter{
		OwnerID:    input.OwnerID,
		CategoryID: input.CategoryID,
		TagID:      input.TagID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum spending for owner %s: %w", input.OwnerID, err)
	}

	return &reportdto.BudgetSpentOutput{
		Spent:      spent,
		From:       from,
		To:         to,
		StaleRates: reportUc.staleRates(ctx),
	}, nil
}

// GetBudgetBreakdown splits a budget's spending by payment method, ordered
// by converted amount descending.
func (reportUc *DefaultReportUsecase) GetBudgetBreakdown(ctx context.Context, ownerID, budgetID string) (*reportdto.BudgetBreakdownOutput, error) {
	budget, err := reportUc.budgetRepo.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: budget %s", domain.ErrBudgetNotFound, budgetID)
	}
	if err := validateSpendingTarget(budget.CategoryID, budget.TagID); err != nil {
		return nil, err
	}

	from, to := budget.PeriodWindow()
	sums, err := reportUc.transactionRepo.SumSpendingByPaymentMethod(ctx, domain.SpendingFilter{
		OwnerID:    ownerID,
		CategoryID: budget.CategoryID,
		TagID:      budget.TagID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to break down spending for budget %s: %w", budgetID, err)
	}

	rows := make([]reportdto.MethodBreakdownRow, 0, len(sums))
	for _, sum := range sums {
		row := reportdto.MethodBreakdownRow{
			PaymentMethodID: sum.PaymentMethodID,
			NativeAmount:    sum.NativeTotal,
			ConvertedAmount: sum.ConvertedTotal,
		}
		if budget.Amount > 0 {
			row.PercentOfLimit = sum.ConvertedTotal / budget.Amount * 100
		}
		rows = append(rows, row)
	}

	return &reportdto.BudgetBreakdownOutput{
		BudgetID:   budget.ID,
		Limit:      budget.Amount,
		Rows:       rows,
		StaleRates: reportUc.staleRates(ctx),
	}, nil
}

func validateSpendingTarget(categoryID, tagID *string) error {
	hasCategory := categoryID != nil && *categoryID != ""
	hasTag := tagID != nil && *tagID != ""
	if hasCategory == hasTag {
		return domain.ErrInvalidBudget
	}
	return nil
}
