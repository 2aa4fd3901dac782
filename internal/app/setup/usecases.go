package setup

import (
	"github.com/mkraev/fintrack-ledger-service/internal/usecase"
)

type UseCases struct {
	RateResolver    usecase.RateResolver
	TransferUsecase usecase.TransferUsecase
	ReportUsecase   usecase.ReportUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	rateResolver := usecase.NewDefaultRateResolver(
		deps.Repositories.RateStore,
		deps.RateProvider,
		deps.Clock,
		deps.Config.RateCache.TTL,
	)
	rateResolver.Metrics = deps.Metrics

	transferUsecase := usecase.NewDefaultTransferUsecase(
		deps.Repositories.TransactionRepo,
		deps.Repositories.PaymentMethodRepo,
		rateResolver,
		deps.TransferPublisher,
		deps.EventLogger,
		deps.Clock,
	)
	transferUsecase.Metrics = deps.Metrics

	reportUsecase := usecase.NewDefaultReportUsecase(
		deps.Repositories.TransactionRepo,
		deps.Repositories.PaymentMethodRepo,
		deps.Repositories.BudgetRepo,
		deps.Repositories.RateStore,
	)

	return &UseCases{
		RateResolver:    rateResolver,
		TransferUsecase: transferUsecase,
		ReportUsecase:   reportUsecase,
	}, nil
}
