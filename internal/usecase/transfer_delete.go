package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/kafka"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DeleteTransfer removes both legs of a transfer or nothing at all. A broken
// pair is reported as an integrity violation instead of half-deleted.
func (transferUc *DefaultTransferUsecase) DeleteTransfer(ctx context.Context, ownerID, transferID string) error {
	tx, err := transferUc.transactionRepo.GetTransactionByID(ctx, transferID)
	if errors.Is(err, domain.ErrTransferNotFound) {
		return err
	}
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	if tx.OwnerID != ownerID {
		return fmt.Errorf("%w: transfer %s does not belong to owner %s", domain.ErrInvalidTransfer, transferID, ownerID)
	}
	if !tx.IsTransfer() {
		return fmt.Errorf("%w: transaction %s is not a transfer", domain.ErrInvalidTransfer, transferID)
	}
	if tx.LinkedTransactionID == nil {
		return fmt.Errorf("%w: transfer %s has no linked leg", domain.ErrIntegrityViolation, transferID)
	}

	partner, err := transferUc.transactionRepo.GetTransactionByID(ctx, *tx.LinkedTransactionID)
	if errors.Is(err, domain.ErrTransferNotFound) {
		return fmt.Errorf("%w: linked transaction %s is missing", domain.ErrIntegrityViolation, *tx.LinkedTransactionID)
	}
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if partner.LinkedTransactionID == nil || *partner.LinkedTransactionID != tx.ID {
		return fmt.Errorf("%w: legs %s and %s are not mutually linked", domain.ErrIntegrityViolation, tx.ID, partner.ID)
	}

	if err := transferUc.transactionRepo.DeleteTransferPair(ctx, tx.ID, partner.ID); err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	// The negative leg is the source side.
	sourceID, destID := tx.ID, partner.ID
	if tx.Amount > 0 {
		sourceID, destID = partner.ID, tx.ID
	}

	go func(event kafka.TransferEvent) {
		if err := transferUc.eventPublisher.PublishTransferEvent(event); err != nil {
			slog.Error("failed to publish kafka transfer event", "stage", "deleting", "error", err.Error())
		}
	}(kafka.TransferEvent{
		SourceTransactionID: sourceID,
		DestTransactionID:   destID,
		OwnerID:             ownerID,
		Status:              kafka.TransferEventDeleted,
		Date:                transferUc.clock.Now().Format(time.RFC3339),
	})

	if err := transferUc.eventLogger.LogTransferDeleted(ctx, logger.TransferDeletedEvent{
		OwnerID:             ownerID,
		SourceTransactionID: sourceID,
		DestTransactionID:   destID,
		Timestamp:           transferUc.clock.Now(),
	}); err != nil {
		slog.Error("failed to log transfer deleted event", "error", err.Error())
	}

	transferUc.recordTransferDeleted()
	return nil
}
