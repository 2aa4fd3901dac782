package usecase

import (
	"context"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	reportdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/report"
)

// ReportUsecase reads totals from already-converted amounts. It never calls
// the rate resolver: every figure it returns was frozen when the row was
// written.
type ReportUsecase interface {
	GetBalance(ctx context.Context, ownerID string) (*reportdto.BalanceOutput, error)
	GetBudgetSpent(ctx context.Context, input *reportdto.BudgetSpentInput) (*reportdto.BudgetSpentOutput, error)
	GetBudgetBreakdown(ctx context.Context, ownerID, budgetID string) (*reportdto.BudgetBreakdownOutput, error)
	GetPaymentMethodBalance(ctx context.Context, methodID string) (*reportdto.MethodBalanceOutput, error)
}

type DefaultReportUsecase struct {
	transactionRepo   domain.TransactionRepository
	paymentMethodRepo domain.PaymentMethodRepository
	budgetRepo        domain.BudgetRepository
	rateStore         domain.RateStore
}

func NewDefaultReportUsecase(
	transactionRepo domain.TransactionRepository,
	paymentMethodRepo domain.PaymentMethodRepository,
	budgetRepo domain.BudgetRepository,
	rateStore domain.RateStore,
) *DefaultReportUsecase {
	return &DefaultReportUsecase{
		transactionRepo:   transactionRepo,
		paymentMethodRepo: paymentMethodRepo,
		budgetRepo:        budgetRepo,
		rateStore:         rateStore,
	}
}
