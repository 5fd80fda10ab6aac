package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
)

// TransitionMode selects how a refused transition is reported
type TransitionMode int

const (
	// TransitionLenient treats a refused or redundant transition as a no-op.
	// Used for provider callbacks, which may be replayed or arrive out of order.
	TransitionLenient TransitionMode = iota
	// TransitionStrict reports a refused transition as InvalidStateError and a
	// redundant one as ValidationError. Used for administrative updates.
	TransitionStrict
)

// TransactionManager applies status transitions through the store's
// compare-and-set and runs the side effects of a won transition
type TransactionManager struct {
	repo         persistence.TransactionRepository
	journal      *paymentJournal
	publisher    event.Publisher
	statusCache  cache.StatusCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxAttempts  int
}

// newTransactionManager creates a transaction manager
func newTransactionManager(
	repo persistence.TransactionRepository,
	journal *paymentJournal,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionManager {
	return &TransactionManager{
		repo:         repo,
		journal:      journal,
		timeProvider: timeProvider,
		logger:       logger,
		maxAttempts:  defaultStatusAttempts,
	}
}

// Transition moves txn to target. It returns the latest known state of the
// transaction and whether this call performed the change. Only the caller
// that wins the swap runs the side effects.
func (m *TransactionManager) Transition(
	ctx context.Context,
	txn *entity.Transaction,
	target entity.Status,
	mode TransitionMode,
	source string,
) (*entity.Transaction, bool, error) {
	current := txn

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		if current.Status == target {
			if mode == TransitionStrict {
				return nil, false, errs.NewValidationError("status",
					fmt.Sprintf("transaction %s is already %s", current.MerchantReference, target))
			}
			return current, false, nil
		}

		if !current.Status.CanTransitionTo(target) {
			if mode == TransitionStrict {
				return nil, false, errs.NewInvalidTransitionError(
					current.MerchantReference, string(current.Status), string(target))
			}
			return current, false, nil
		}

		now := m.timeProvider.Now()
		swapped, err := m.repo.CompareAndSetStatus(ctx, current.ID, current.Status, target, now)
		if err != nil {
			return nil, false, err
		}

		if swapped {
			updated := current.Clone()
			updated.Status = target
			updated.UpdatedAt = now

			m.logger.Info("Transaction status changed", map[string]any{
				"merchant_reference": updated.MerchantReference,
				"transaction_id":     updated.ID,
				"from":               string(current.Status),
				"to":                 string(target),
				"source":             source,
			})
			m.afterTransition(ctx, updated, current.Status, source)
			return updated, true, nil
		}

		m.logger.Debug("Status swap lost, re-reading transaction", map[string]any{
			"merchant_reference": current.MerchantReference,
			"expected":           string(current.Status),
			"target":             string(target),
			"attempt":            attempt,
		})

		current, err = m.repo.GetByID(ctx, current.ID)
		if err != nil {
			return nil, false, err
		}
	}

	m.logger.Error("Status change did not settle", map[string]any{
		"merchant_reference": txn.MerchantReference,
		"target":             string(target),
		"attempts":           m.maxAttempts,
	})
	return nil, false, fmt.Errorf("%w: status change for %s did not settle after %d attempts",
		errs.ErrPersistence, txn.MerchantReference, m.maxAttempts)
}

// afterTransition runs the side effects owned by the winner of a swap
func (m *TransactionManager) afterTransition(
	ctx context.Context,
	txn *entity.Transaction,
	from entity.Status,
	source string,
) {
	m.journal.record(ctx, txn, entity.EventStatusChanged, string(txn.Status), map[string]any{
		"from":   string(from),
		"to":     string(txn.Status),
		"source": source,
	})

	if txn.Status == entity.StatusSuccess {
		m.publishPaid(ctx, txn)
	}

	if txn.Status.IsTerminal() && m.statusCache != nil {
		if err := m.statusCache.Put(ctx, txn); err != nil {
			m.logger.Warn("Failed to cache terminal transaction", map[string]any{
				"merchant_reference": txn.MerchantReference,
				"error":              err.Error(),
			})
		}
	}
}

func (m *TransactionManager) publishPaid(ctx context.Context, txn *entity.Transaction) {
	if m.publisher == nil {
		return
	}

	err := m.publisher.PublishTransactionPaid(ctx, event.TransactionPaid{
		TransactionID:     txn.ID,
		MerchantReference: txn.MerchantReference,
		TotalDiamond:      txn.TotalDiamond,
		TotalAmount:       txn.TotalAmount,
		ContactReference:  txn.ContactReference,
		TargetID:          txn.TargetID,
		PaidAt:            txn.UpdatedAt,
	})
	if err != nil {
		m.logger.Error("Failed to publish fulfillment event", map[string]any{
			"merchant_reference": txn.MerchantReference,
			"transaction_id":     txn.ID,
			"error":              err.Error(),
		})
		m.journal.record(ctx, txn, entity.EventFulfillmentFailed, "publish_failed", map[string]any{
			"error": err.Error(),
		})
	}
}
