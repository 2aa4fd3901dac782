package setup

import (
	"fmt"

	"github.com/mkraev/fintrack-ledger-service/internal/config"
	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/kafka"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/logger"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/metrics"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/repository"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/rateapi"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config            *config.LedgerConfig
	DB                *gorm.DB
	TransferPublisher *kafka.KafkaPublisher
	EventLogger       logger.TransferEventLogger
	RateProvider      domain.RateProvider
	Metrics           *metrics.LedgerMetrics
	Clock             domain.Clock
	Repositories      *Repositories
}

type Repositories struct {
	TransactionRepo   domain.TransactionRepository
	PaymentMethodRepo domain.PaymentMethodRepository
	BudgetRepo        domain.BudgetRepository
	RateStore         domain.RateStore
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	repos := &Repositories{
		TransactionRepo:   repository.NewDefaultTransactionRepository(db),
		PaymentMethodRepo: repository.NewDefaultPaymentMethodRepository(db),
		BudgetRepo:        repository.NewDefaultBudgetRepository(db),
		RateStore:         repository.NewDefaultRateStore(db),
	}

	return &Dependencies{
		Config:            cfg,
		DB:                db,
		TransferPublisher: initTransferPublisher(cfg),
		EventLogger:       logger.NewPGTransferEventLogger(db),
		RateProvider:      rateapi.NewProvider(cfg.RateProvider.BaseURL, cfg.RateProvider.BaseCurrency, cfg.RateProvider.Timeout),
		Metrics:           metrics.NewLedgerMetrics(),
		Clock:             domain.RealClock{},
		Repositories:      repos,
	}, nil
}

func initTransferPublisher(cfg *config.LedgerConfig) *kafka.KafkaPublisher {
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	return kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
}
