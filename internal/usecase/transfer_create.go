package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/kafka"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/logger"
	transferdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/transfer"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateTransfer writes both legs of a cross-method transfer. The rate is
// resolved before anything touches the ledger, so a rejected transfer leaves
// zero rows behind. The destination amount is frozen at creation time and
// never recomputed from a later rate.
func (transferUc *DefaultTransferUsecase) CreateTransfer(ctx context.Context, input *transferdto.CreateTransferInput) (*transferdto.TransferResult, error) {
	started := time.Now()

	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, transferUc.failTransfer(ctx, input, started, "invalid_amount",
			fmt.Errorf("%w: amount must be positive, got %v", domain.ErrInvalidTransfer, input.Amount))
	}
	if input.SourceMethodID == input.DestMethodID {
		return nil, transferUc.failTransfer(ctx, input, started, "same_method",
			fmt.Errorf("%w: source and destination are the same payment method", domain.ErrInvalidTransfer))
	}

	source, err := transferUc.paymentMethodRepo.GetPaymentMethodByID(ctx, input.SourceMethodID)
	if err != nil {
		return nil, transferUc.failTransfer(ctx, input, started, "method_not_found",
			fmt.Errorf("%w: source method: %v", domain.ErrInvalidTransfer, err))
	}
	dest, err := transferUc.paymentMethodRepo.GetPaymentMethodByID(ctx, input.DestMethodID)
	if err != nil {
		return nil, transferUc.failTransfer(ctx, input, started, "method_not_found",
			fmt.Errorf("%w: destination method: %v", domain.ErrInvalidTransfer, err))
	}
	if source.OwnerID != input.OwnerID || dest.OwnerID != input.OwnerID {
		return nil, transferUc.failTransfer(ctx, input, started, "wrong_owner",
			fmt.Errorf("%w: payment method does not belong to owner %s", domain.ErrInvalidTransfer, input.OwnerID))
	}
	if !source.IsActive || !dest.IsActive {
		return nil, transferUc.failTransfer(ctx, input, started, "method_inactive",
			fmt.Errorf("%w: both payment methods must be active", domain.ErrInvalidTransfer))
	}

	quote, err := transferUc.rateResolver.GetRate(ctx, source.Currency, dest.Currency, input.Date)
	if err != nil {
		return nil, transferUc.failTransfer(ctx, input, started, "rate_error",
			status.Error(codes.Internal, err.Error()))
	}
	if quote.Source == domain.QuoteNotFound {
		return nil, transferUc.failTransfer(ctx, input, started, "rate_unavailable",
			fmt.Errorf("%w: no rate for %s/%s", domain.ErrRateUnavailable, source.Currency, dest.Currency))
	}

	now := transferUc.clock.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	baseCurrency := strings.ToUpper(input.BaseCurrency)
	if baseCurrency == "" {
		baseCurrency = source.Currency
	}

	converted := decimal.NewFromFloat(input.Amount).
		Mul(decimal.NewFromFloat(quote.Rate)).
		Round(2).
		InexactFloat64()

	sourceTx := &domain.Transaction{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		PaymentMethodID: source.ID,
		Type:            domain.TransactionTransfer,
		Amount:          -input.Amount,
		NativeAmount:    -input.Amount,
		ExchangeRate:    quote.Rate,
		BaseCurrency:    baseCurrency,
		Description:     input.Description,
		Date:            date,
		CreatedAt:       now,
	}
	destTx := &domain.Transaction{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		PaymentMethodID: dest.ID,
		Type:            domain.TransactionTransfer,
		Amount:          converted,
		NativeAmount:    converted,
		ExchangeRate:    quote.Rate,
		BaseCurrency:    baseCurrency,
		Description:     input.Description,
		Date:            date,
		CreatedAt:       now,
	}

	if err := transferUc.transactionRepo.CreateTransferPair(ctx, sourceTx, destTx); err != nil {
		return nil, transferUc.failTransfer(ctx, input, started, "storage",
			status.Error(codes.Internal, err.Error()))
	}
	sourceTx.LinkedTransactionID = &destTx.ID
	destTx.LinkedTransactionID = &sourceTx.ID

	go func(event kafka.TransferEvent) {
		if err := transferUc.eventPublisher.PublishTransferEvent(event); err != nil {
			slog.Error("failed to publish kafka transfer event", "stage", "creating", "error", err.Error())
		}
	}(kafka.TransferEvent{
		SourceTransactionID: sourceTx.ID,
		DestTransactionID:   destTx.ID,
		OwnerID:             input.OwnerID,
		Status:              kafka.TransferEventCreated,
		Amount:              input.Amount,
		SourceCurrency:      source.Currency,
		DestCurrency:        dest.Currency,
		ConvertedAmount:     converted,
		ExchangeRate:        quote.Rate,
		Date:                date.Format(time.RFC3339),
	})

	if err := transferUc.eventLogger.LogTransferCreated(ctx, logger.TransferCreatedEvent{
		OwnerID:             input.OwnerID,
		SourceTransactionID: sourceTx.ID,
		DestTransactionID:   destTx.ID,
		SourceMethodID:      source.ID,
		DestMethodID:        dest.ID,
		Amount:              input.Amount,
		SourceCurrency:      source.Currency,
		DestCurrency:        dest.Currency,
		ConvertedAmount:     converted,
		ExchangeRate:        quote.Rate,
		RateSource:          string(quote.Source),
		Timestamp:           now,
	}); err != nil {
		slog.Error("failed to log transfer created event", "error", err.Error())
	}

	transferUc.recordTransferCreated(source.Currency, dest.Currency, input.Amount)
	transferUc.recordTransferCreateDuration("success", time.Since(started).Seconds())

	return &transferdto.TransferResult{
		SourceTransaction: sourceTx,
		DestTransaction:   destTx,
		Rate:              quote.Rate,
		RateSource:        quote.Source,
	}, nil
}

// failTransfer records the rejection in metrics and the audit table and hands
// the original error back to the caller.
func (transferUc *DefaultTransferUsecase) failTransfer(ctx context.Context, input *transferdto.CreateTransferInput, started time.Time, reason string, err error) error {
	transferUc.recordTransferError(reason)
	transferUc.recordTransferCreateDuration("failure", time.Since(started).Seconds())

	if logErr := transferUc.eventLogger.LogTransferFailed(ctx, logger.TransferFailedEvent{
		OwnerID:        input.OwnerID,
		SourceMethodID: input.SourceMethodID,
		DestMethodID:   input.DestMethodID,
		Amount:         input.Amount,
		Reason:         reason,
		Timestamp:      transferUc.clock.Now(),
	}); logErr != nil {
		slog.Error("failed to log transfer failed event", "error", logErr.Error())
	}

	return err
}
