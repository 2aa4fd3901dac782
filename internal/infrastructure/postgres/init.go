package postgres

import (
	"log"

	"github.com/mkraev/fintrack-ledger-service/internal/config"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.LedgerConfig) *gorm.DB {
	dsn := cfg.LedgerDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PaymentMethodModel{},
		&models.ExchangeRateModel{},
		&models.TransactionModel{},
		&models.TransactionTagModel{},
		&models.BudgetModel{},
	)

	return db
}
