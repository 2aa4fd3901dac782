package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// CreateTransferPair inserts both legs unlinked, then cross-links them once
// both ids exist. Everything runs in one transaction: no reader ever sees one
// leg without its partner.
func (r *DefaultTransactionRepository) CreateTransferPair(ctx context.Context, source, dest *domain.Transaction) error {
	sourceModel := mappers.ToGORMTransaction(source)
	destModel := mappers.ToGORMTransaction(dest)
	sourceModel.LinkedTransactionID = nil
	destModel.LinkedTransactionID = nil

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sourceModel).Error; err != nil {
			return fmt.Errorf("create source leg: %w", err)
		}
		if err := tx.Create(destModel).Error; err != nil {
			return fmt.Errorf("create destination leg: %w", err)
		}
		if err := tx.Model(&models.TransactionModel{}).
			Where("id = ?", sourceModel.ID).
			Update("linked_transaction_id", destModel.ID).Error; err != nil {
			return fmt.Errorf("link source leg: %w", err)
		}
		if err := tx.Model(&models.TransactionModel{}).
			Where("id = ?", destModel.ID).
			Update("linked_transaction_id", sourceModel.ID).Error; err != nil {
			return fmt.Errorf("link destination leg: %w", err)
		}
		return nil
	})
}

func (r *DefaultTransactionRepository) DeleteTransferPair(ctx context.Context, firstID, secondID string) error {
	ids := []string{firstID, secondID}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Clear the mutual links first so the self reference never blocks
		// the delete.
		if err := tx.Model(&models.TransactionModel{}).
			Where("id IN ?", ids).
			Update("linked_transaction_id", nil).Error; err != nil {
			return fmt.Errorf("unlink transfer pair: %w", err)
		}
		if err := tx.Delete(&models.TransactionModel{}, "id IN ?", ids).Error; err != nil {
			return fmt.Errorf("delete transfer pair: %w", err)
		}
		return nil
	})
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransferNotFound
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) GetTransfersByOwnerID(ctx context.Context, ownerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("owner_id = ? AND type = ?", ownerID, domain.TransactionTransfer)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	var rows []models.TransactionModel
	if err := query.
		Order("date DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, mappers.ToDomainTransaction(&rows[i]))
	}
	return transactions, total, nil
}

// FindTransferLinks joins every transfer row of the owner with the row its
// link points to. Broken links come back with nil partner fields.
func (r *DefaultTransactionRepository) FindTransferLinks(ctx context.Context, ownerID string) ([]*domain.TransferLink, error) {
	var links []*domain.TransferLink
	err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select(`transactions.id,
			transactions.linked_transaction_id,
			transactions.amount,
			partner.id AS partner_id,
			partner.linked_transaction_id AS partner_linked_id,
			partner.amount AS partner_amount`).
		Joins("LEFT JOIN transactions AS partner ON partner.id = transactions.linked_transaction_id").
		Where("transactions.owner_id = ? AND transactions.type = ?", ownerID, domain.TransactionTransfer).
		Scan(&links).Error
	if err != nil {
		return nil, fmt.Errorf("scan transfer links: %w", err)
	}

	return links, nil
}

func (r *DefaultTransactionRepository) SumAmountsByType(ctx context.Context, ownerID string) ([]domain.TypeSum, error) {
	var sums []domain.TypeSum
	err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ?", ownerID).
		Group("type").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("sum amounts by type: %w", err)
	}

	return sums, nil
}

func (r *DefaultTransactionRepository) SumSpending(ctx context.Context, filter domain.SpendingFilter) (float64, error) {
	type SpentAgg struct {
		Total float64
	}
	var agg SpentAgg
	if err := r.spendingQuery(ctx, filter).
		Select("COALESCE(SUM(transactions.amount), 0) AS total").
		Scan(&agg).Error; err != nil {
		return 0, fmt.Errorf("sum spending: %w", err)
	}

	return agg.Total, nil
}

func (r *DefaultTransactionRepository) SumSpendingByPaymentMethod(ctx context.Context, filter domain.SpendingFilter) ([]domain.PaymentMethodSum, error) {
	var sums []domain.PaymentMethodSum
	err := r.spendingQuery(ctx, filter).
		Select(`transactions.payment_method_id,
			COALESCE(SUM(transactions.native_amount), 0) AS native_total,
			COALESCE(SUM(transactions.amount), 0) AS converted_total`).
		Group("transactions.payment_method_id").
		Order("converted_total DESC").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("sum spending by payment method: %w", err)
	}

	return sums, nil
}

func (r *DefaultTransactionRepository) SumNativeByPaymentMethod(ctx context.Context, paymentMethodID string) (float64, error) {
	type NativeAgg struct {
		Total float64
	}
	var agg NativeAgg
	err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("COALESCE(SUM(native_amount), 0) AS total").
		Where("payment_method_id = ?", paymentMethodID).
		Scan(&agg).Error
	if err != nil {
		return 0, fmt.Errorf("sum native amounts: %w", err)
	}

	return agg.Total, nil
}

// spendingQuery filters non-transfer rows by owner, period window and
// category or tag. Moving money between accounts is never spending, so
// transfer rows are excluded up front.
func (r *DefaultTransactionRepository) spendingQuery(ctx context.Context, filter domain.SpendingFilter) *gorm.DB {
	query := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("transactions.owner_id = ?", filter.OwnerID).
		Where("transactions.type <> ?", domain.TransactionTransfer).
		Where("transactions.date >= ? AND transactions.date < ?", filter.From, filter.To)

	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		query = query.
			Joins("JOIN transaction_tags ON transaction_tags.transaction_id = transactions.id").
			Where("transaction_tags.tag_id = ?", *filter.TagID)
	}
	return query
}
