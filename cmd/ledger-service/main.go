package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/mkraev/fintrack-ledger-service/internal/app/background"
	"github.com/mkraev/fintrack-ledger-service/internal/app/setup"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/migrate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	// Reading config, init database, repositories, publisher
	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	// Apply SQL migrations, including the seed rates
	if err := migrate.RunMigrations(deps.DB, deps.Config.LedgerDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to initialize usecases: %v", err)
	}

	// Periodic rate refresh and stale sweep
	tasks := background.NewBackgroundTasks(
		useCases.RateResolver,
		deps.Repositories.PaymentMethodRepo,
		deps.Repositories.RateStore,
		deps.Config.RateCache.RefreshInterval,
		deps.Config.RateCache.SweepInterval,
		slog.Default(),
	)
	tasks.Metrics = deps.Metrics
	tasks.StartAll(context.Background())

	http.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf("%s:%s", deps.Config.MetricsServer.Host, deps.Config.MetricsServer.Port)
	log.Printf("metrics server started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve metrics: %v\n", err)
	}
}
