package transaction

import (
	"context"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
)

// UpdateStatusByReference is the administrative override keyed by merchant reference
func (s *Service) UpdateStatusByReference(ctx context.Context, reference, status string) (*entity.Transaction, error) {
	if err := s.validator.ValidateReference(reference); err != nil {
		return nil, err
	}
	target, err := s.validator.ValidateStatus(status)
	if err != nil {
		return nil, err
	}

	txn, err := s.repo.GetByMerchantReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.adminTransition(ctx, txn, target)
}

// UpdateStatusByID is the administrative override keyed by ID
func (s *Service) UpdateStatusByID(ctx context.Context, id uint64, status string) (*entity.Transaction, error) {
	target, err := s.validator.ValidateStatus(status)
	if err != nil {
		return nil, err
	}

	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.adminTransition(ctx, txn, target)
}

func (s *Service) adminTransition(ctx context.Context, txn *entity.Transaction, target entity.Status) (*entity.Transaction, error) {
	updated, _, err := s.manager.Transition(ctx, txn, target, TransitionStrict, "admin")
	if err != nil {
		s.logger.Warn("Administrative status update rejected", map[string]any{
			"merchant_reference": txn.MerchantReference,
			"from":               string(txn.Status),
			"to":                 string(target),
			"error":              err.Error(),
		})
		return nil, err
	}
	return updated, nil
}
