package transaction

import (
	"context"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// Create records a new pending transaction. A reference collision surfaces as
// ErrDuplicateReference and is not retried here.
func (s *Service) Create(ctx context.Context, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	reference := s.newReference(s.timeProvider.Now())
	txn, err := entity.NewTransaction(
		reference,
		req.TotalDiamond,
		req.TotalAmount,
		req.ContactReference,
		req.TargetID,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"merchant_reference": reference,
			"error":              err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id":     txn.ID,
		"merchant_reference": txn.MerchantReference,
		"total_diamond":      txn.TotalDiamond,
		"total_amount":       txn.TotalAmount,
	})
	return txn, nil
}
