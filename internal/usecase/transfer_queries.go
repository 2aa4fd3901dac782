package usecase

import (
	"context"
	"fmt"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	transferdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/transfer"
)

const (
	defaultTransfersPageSize = 50
	maxTransfersPageSize     = 100
)

func (transferUc *DefaultTransferUsecase) GetTransferByID(ctx context.Context, transferID string) (*domain.Transaction, error) {
	tx, err := transferUc.transactionRepo.GetTransactionByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !tx.IsTransfer() {
		return nil, fmt.Errorf("%w: transaction %s is not a transfer", domain.ErrTransferNotFound, transferID)
	}
	return tx, nil
}

func (transferUc *DefaultTransferUsecase) GetOwnerTransfers(ctx context.Context, input *transferdto.ListTransfersInput) (*transferdto.ListTransfersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultTransfersPageSize
	}
	if limit > maxTransfersPageSize {
		limit = maxTransfersPageSize
	}

	transfers, total, err := transferUc.transactionRepo.GetTransfersByOwnerID(ctx, input.OwnerID, page, limit)
	if err != nil {
		return nil, err
	}
	return &transferdto.ListTransfersOutput{
		Transfers: transfers,
		Total:     total,
	}, nil
}
