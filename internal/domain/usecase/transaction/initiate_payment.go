package transaction

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// InitiatePayment asks the provider for a QRIS code using the stored amount and
// reference, then moves a pending transaction to processing. A transaction
// already in processing gets a fresh code without a status change.
func (s *Service) InitiatePayment(ctx context.Context, id uint64) (*usecase.PaymentInitiation, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: transaction %s is already %s",
			errs.ErrInvalidState, txn.MerchantReference, txn.Status)
	}

	result, err := s.provider.CreateQrisPayment(ctx, payment.QrisRequest{
		ReferenceID:   txn.MerchantReference,
		Amount:        txn.TotalAmount,
		PayerLabel:    txn.ContactReference,
		QuantityLabel: strconv.FormatInt(txn.TotalDiamond, 10),
		Description:   txn.Description(),
	})
	if err != nil {
		fields := map[string]any{
			"merchant_reference": txn.MerchantReference,
			"transaction_id":     txn.ID,
		}
		if pe, ok := errs.AsProviderError(err); ok {
			for k, v := range pe.LogFields() {
				fields[k] = v
			}
		} else {
			fields["error"] = err.Error()
		}
		s.logger.Error("QRIS payment creation failed", fields)
		return nil, err
	}

	s.manager.journal.record(ctx, txn, entity.EventPaymentInitiated, string(txn.Status), map[string]any{
		"provider_transaction_id": derefOrNil(result.ProviderTransactionID),
	})

	if txn.Status == entity.StatusPending {
		// A concurrent webhook may already have moved the transaction on; that is accepted.
		if _, _, err := s.manager.Transition(ctx, txn, entity.StatusProcessing, TransitionLenient, "initiate_payment"); err != nil {
			return nil, err
		}
	}

	return &usecase.PaymentInitiation{
		ReferenceID:   txn.MerchantReference,
		TransactionID: txn.ID,
		Qris:          result,
	}, nil
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
