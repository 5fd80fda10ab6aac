package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
)

// ListFilter narrows and pages a transaction listing
type ListFilter struct {
	Status *entity.Status
	Page   int // 1-based
	Limit  int
}

// Offset returns the row offset of the requested page
func (f ListFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// TransactionRepository is the store contract for top-up transactions
type TransactionRepository interface {
	// Create persists a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateReference: the merchant reference is already taken
	// - ErrPersistence: the store failed
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID loads a transaction by its system ID
	//
	// Possible errors:
	// - ErrTransactionNotFound
	// - ErrPersistence
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByMerchantReference loads a transaction by its unique merchant reference
	//
	// Possible errors:
	// - ErrTransactionNotFound
	// - ErrPersistence
	GetByMerchantReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// List returns one page of transactions, newest first, and the total matching count
	List(ctx context.Context, filter ListFilter) ([]*entity.Transaction, int64, error)

	// CompareAndSetStatus moves the transaction from one status to another in a single
	// conditional update. It reports false, without error, when the stored status was
	// no longer `from`.
	CompareAndSetStatus(ctx context.Context, id uint64, from, to entity.Status, at time.Time) (bool, error)
}

// PaymentEventRepository appends to the payment journal
type PaymentEventRepository interface {
	// Record stores one journal entry
	Record(ctx context.Context, event *entity.PaymentEvent) error

	// ListByTransaction returns the journal of one transaction in insertion order
	ListByTransaction(ctx context.Context, transactionID uint64) ([]*entity.PaymentEvent, error)
}
