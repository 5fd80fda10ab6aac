package usecase

import (
	"context"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
)

// CreateTransactionRequest carries the purchase details of a new top-up
type CreateTransactionRequest struct {
	TotalDiamond     int64
	TotalAmount      int64
	ContactReference string
	TargetID         string
}

// PaymentInitiation is returned when a QRIS payment has been created
type PaymentInitiation struct {
	ReferenceID   string
	TransactionID uint64
	Qris          *payment.QrisResult
}

// WebhookOutcome describes what a webhook delivery did
type WebhookOutcome string

// Webhook outcomes
const (
	// WebhookApplied means the delivery moved the transaction to a new status
	WebhookApplied WebhookOutcome = "applied"
	// WebhookDuplicate means the transaction was already terminal or already in the implied status
	WebhookDuplicate WebhookOutcome = "duplicate"
	// WebhookIgnored means the delivery carried a status that implies no transition
	WebhookIgnored WebhookOutcome = "ignored"
)

// WebhookResult is the state after a webhook was handled
type WebhookResult struct {
	Outcome     WebhookOutcome
	Transaction *entity.Transaction
}

// ListTransactionsRequest selects a page of transactions
type ListTransactionsRequest struct {
	Page   int
	Limit  int
	Status string
}

// TransactionPage is one page of a listing
type TransactionPage struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
}

// TotalPages returns the number of pages for the current limit
func (p TransactionPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// TransactionUseCase is the single authority over transaction lifecycle state
type TransactionUseCase interface {
	// Create records a new pending transaction with a fresh merchant reference
	Create(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error)

	// InitiatePayment creates a QRIS payment for the transaction and moves it to processing
	InitiatePayment(ctx context.Context, id uint64) (*PaymentInitiation, error)

	// ApplyWebhookEvent reconciles an authenticated provider callback
	ApplyWebhookEvent(ctx context.Context, reference string, payload map[string]any) (*WebhookResult, error)

	// CheckStatus returns the transaction only to the contact that created it
	CheckStatus(ctx context.Context, reference, contactReference string) (*entity.Transaction, error)

	// UpdateStatusByReference is the administrative status override keyed by merchant reference
	UpdateStatusByReference(ctx context.Context, reference, status string) (*entity.Transaction, error)

	// UpdateStatusByID is the administrative status override keyed by ID
	UpdateStatusByID(ctx context.Context, id uint64, status string) (*entity.Transaction, error)

	// GetByID returns one transaction
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns a page of transactions, newest first
	List(ctx context.Context, req ListTransactionsRequest) (*TransactionPage, error)
}
