package usecase

import (
	"context"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/kafka"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/logger"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/metrics"
	transferdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/transfer"
)

type TransferUsecase interface {
	CreateTransfer(ctx context.Context, input *transferdto.CreateTransferInput) (*transferdto.TransferResult, error)
	DeleteTransfer(ctx context.Context, ownerID, transferID string) error
	GetTransferByID(ctx context.Context, transferID string) (*domain.Transaction, error)
	GetOwnerTransfers(ctx context.Context, input *transferdto.ListTransfersInput) (*transferdto.ListTransfersOutput, error)
	CheckTransferIntegrity(ctx context.Context, ownerID string) (*transferdto.IntegrityReport, error)
}

type DefaultTransferUsecase struct {
	transactionRepo   domain.TransactionRepository
	paymentMethodRepo domain.PaymentMethodRepository
	rateResolver      RateResolver
	eventPublisher    kafka.TransferPublisher
	eventLogger       logger.TransferEventLogger
	clock             domain.Clock

	Metrics *metrics.LedgerMetrics
}

func NewDefaultTransferUsecase(
	transactionRepo domain.TransactionRepository,
	paymentMethodRepo domain.PaymentMethodRepository,
	rateResolver RateResolver,
	eventPublisher kafka.TransferPublisher,
	eventLogger logger.TransferEventLogger,
	clock domain.Clock,
) *DefaultTransferUsecase {
	return &DefaultTransferUsecase{
		transactionRepo:   transactionRepo,
		paymentMethodRepo: paymentMethodRepo,
		rateResolver:      rateResolver,
		eventPublisher:    eventPublisher,
		eventLogger:       eventLogger,
		clock:             clock,
	}
}
