package transaction

import (
	"strings"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// TransactionValidator checks lifecycle inputs before they reach the store
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate validates a purchase request
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) error {
	if req.TotalDiamond <= 0 {
		return errs.NewValidationError("total_diamond", "must be a positive integer")
	}
	if req.TotalAmount <= 0 {
		return errs.NewValidationError("total_amount", "must be a positive integer")
	}
	if strings.TrimSpace(req.ContactReference) == "" {
		return errs.NewValidationError("no_wa", "must not be empty")
	}
	return nil
}

// ValidateReference rejects an empty merchant reference
func (v *TransactionValidator) ValidateReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValidationError("merchant_transaction_id", "must not be empty")
	}
	return nil
}

// ValidateStatus parses an administrative target status
func (v *TransactionValidator) ValidateStatus(raw string) (entity.Status, error) {
	status, ok := entity.ParseStatus(raw)
	if !ok {
		return "", errs.NewValidationError("status", "must be one of pending, processing, success, failed")
	}
	return status, nil
}

// ListFilter normalizes paging input: page defaults to 1, limit to 10 and is capped at 100
func (v *TransactionValidator) ListFilter(req usecase.ListTransactionsRequest) (persistence.ListFilter, error) {
	filter := persistence.ListFilter{Page: req.Page, Limit: req.Limit}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	if strings.TrimSpace(req.Status) != "" {
		status, err := v.ValidateStatus(req.Status)
		if err != nil {
			return persistence.ListFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}
