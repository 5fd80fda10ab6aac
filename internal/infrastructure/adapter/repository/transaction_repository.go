package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                transaction.ID,
		MerchantReference: transaction.MerchantReference,
		TotalDiamond:      transaction.TotalDiamond,
		TotalAmount:       transaction.TotalAmount,
		ContactReference:  transaction.ContactReference,
		TargetID:          transaction.TargetID,
		Status:            string(transaction.Status),
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		MerchantReference: m.MerchantReference,
		TotalDiamond:      m.TotalDiamond,
		TotalAmount:       m.TotalAmount,
		ContactReference:  m.ContactReference,
		TargetID:          m.TargetID,
		Status:            entity.Status(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

// Create persists a new transaction and writes the assigned ID back to it
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"merchant_reference": transaction.MerchantReference,
	})

	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate merchant reference detected", map[string]any{
				"merchant_reference": transaction.MerchantReference,
			})
			return errs.ErrDuplicateReference
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"merchant_reference": transaction.MerchantReference,
			"error":              err,
		})
		return r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound, "create transaction")
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id":     transaction.ID,
		"merchant_reference": transaction.MerchantReference,
	})
	return nil
}

// GetByID retrieves a transaction by its system ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		return nil, r.lookupError(err, "transaction_id", id)
	}
	return r.modelToEntity(&transactionModel), nil
}

// GetByMerchantReference retrieves a transaction by its merchant reference
func (r *TransactionRepository) GetByMerchantReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).Where("merchant_transaction_id = ?", reference).First(&transactionModel).Error; err != nil {
		return nil, r.lookupError(err, "merchant_reference", reference)
	}
	return r.modelToEntity(&transactionModel), nil
}

func (r *TransactionRepository) lookupError(err error, key string, value any) error {
	mapped := r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound, "get transaction")
	if mapped == errs.ErrTransactionNotFound {
		r.logger.Debug("Transaction not found", map[string]any{key: value})
		return mapped
	}

	r.logger.Error("Failed to get transaction", map[string]any{
		key:     value,
		"error": err,
	})
	return mapped
}

// List returns one page of transactions, newest first, and the total matching count
func (r *TransactionRepository) List(ctx context.Context, filter persistence.ListFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count transactions", map[string]any{"error": err})
		return nil, 0, r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound, "count transactions")
	}

	var rows []model.Transaction
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{"error": err})
		return nil, 0, r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound, "list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, total, nil
}

// CompareAndSetStatus updates the status only while the stored status still
// equals from. It reports whether this call performed the update.
func (r *TransactionRepository) CompareAndSetStatus(ctx context.Context, id uint64, from, to entity.Status, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": at,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"transaction_id": id,
			"from":           from,
			"to":             to,
			"error":          result.Error,
		})
		return false, r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionNotFound, "update transaction status")
	}

	swapped := result.RowsAffected == 1
	r.logger.Debug("Transaction status compare-and-set", map[string]any{
		"transaction_id": id,
		"from":           from,
		"to":             to,
		"swapped":        swapped,
	})
	return swapped, nil
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)
