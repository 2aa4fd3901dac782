package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	reportdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/report"
)

// GetBalance folds the per-type sums into one base-currency figure: income
// adds, expense subtracts, transfer legs enter as stored with their signs.
// The type switch is exhaustive on purpose, an unknown type is a miscount
// waiting to happen and fails loudly instead.
func (reportUc *DefaultReportUsecase) GetBalance(ctx context.Context, ownerID string) (*reportdto.BalanceOutput, error) {
	sums, err := reportUc.transactionRepo.SumAmountsByType(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions for owner %s: %w", ownerID, err)
	}

	var balance float64
	for _, sum := range sums {
		switch sum.Type {
		case domain.TransactionIncome:
			balance += sum.Total
		case domain.TransactionExpense:
			balance -= sum.Total
		case domain.TransactionTransfer:
			balance += sum.Total
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTransactionType, sum.Type)
		}
	}

	return &reportdto.BalanceOutput{
		Balance:    balance,
		StaleRates: reportUc.staleRates(ctx),
	}, nil
}

// GetPaymentMethodBalance sums native amounts for one method. No conversion
// is involved, so there is no staleness to report.
func (reportUc *DefaultReportUsecase) GetPaymentMethodBalance(ctx context.Context, methodID string) (*reportdto.MethodBalanceOutput, error) {
	method, err := reportUc.paymentMethodRepo.GetPaymentMethodByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	total, err := reportUc.transactionRepo.SumNativeByPaymentMethod(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum native amounts for method %s: %w", methodID, err)
	}

	return &reportdto.MethodBalanceOutput{
		PaymentMethodID: method.ID,
		Currency:        method.Currency,
		Balance:         total,
	}, nil
}

// staleRates is advisory. A failed count degrades to "no warning" rather
// than failing the read.
func (reportUc *DefaultReportUsecase) staleRates(ctx context.Context) bool {
	count, err := reportUc.rateStore.CountStale(ctx)
	if err != nil {
		slog.Warn("failed to count stale rates", "error", err.Error())
		return false
	}
	return count > 0
}
