package transaction

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// CheckStatus returns the transaction only when contactReference matches the payer.
// A mismatch is indistinguishable from an unknown reference.
func (s *Service) CheckStatus(ctx context.Context, reference, contactReference string) (*entity.Transaction, error) {
	if err := s.validator.ValidateReference(reference); err != nil {
		return nil, err
	}
	if strings.TrimSpace(contactReference) == "" {
		return nil, errs.NewValidationError("no_wa", "must not be empty")
	}

	txn, cached := s.cachedStatus(ctx, reference)
	if !cached {
		var err error
		txn, err = s.repo.GetByMerchantReference(ctx, reference)
		if err != nil {
			return nil, err
		}
	}

	if !txn.OwnedBy(contactReference) {
		s.logger.Debug("Status check with mismatched contact", map[string]any{
			"merchant_reference": reference,
		})
		return nil, errs.ErrTransactionNotFound
	}

	if !cached && txn.Status.IsTerminal() && s.statusCache != nil {
		if err := s.statusCache.Put(ctx, txn); err != nil {
			s.logger.Warn("Failed to cache terminal transaction", map[string]any{
				"merchant_reference": reference,
				"error":              err.Error(),
			})
		}
	}
	return txn, nil
}

func (s *Service) cachedStatus(ctx context.Context, reference string) (*entity.Transaction, bool) {
	if s.statusCache == nil {
		return nil, false
	}
	txn, ok, err := s.statusCache.Get(ctx, reference)
	if err != nil {
		s.logger.Warn("Status cache read failed", map[string]any{
			"merchant_reference": reference,
			"error":              err.Error(),
		})
		return nil, false
	}
	return txn, ok
}

// GetByID returns one transaction
func (s *Service) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of transactions, newest first
func (s *Service) List(ctx context.Context, req usecase.ListTransactionsRequest) (*usecase.TransactionPage, error) {
	filter, err := s.validator.ListFilter(req)
	if err != nil {
		return nil, err
	}

	txns, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &usecase.TransactionPage{
		Transactions: txns,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}, nil
}
