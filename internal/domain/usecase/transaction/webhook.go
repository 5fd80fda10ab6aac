package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// statusFields are the payload keys the provider may use for the payment status
var statusFields = []string{"status", "transaction_status", "payment_status"}

var (
	successStatuses    = []string{"success", "paid", "settled", "succeeded", "completed", "capture"}
	failedStatuses     = []string{"failed", "failure", "expired", "cancelled", "canceled", "rejected", "denied"}
	processingStatuses = []string{"processing", "pending"}
)

// ImpliedStatus maps a webhook payload to the lifecycle status it announces.
// A payload without any status field is a payment notification and implies
// success. ok is false when the status is present but unrecognized.
func ImpliedStatus(payload map[string]any) (entity.Status, bool) {
	raw, found := lookupStatus(payload)
	if !found {
		return entity.StatusSuccess, true
	}

	switch {
	case contains(successStatuses, raw):
		return entity.StatusSuccess, true
	case contains(failedStatuses, raw):
		return entity.StatusFailed, true
	case contains(processingStatuses, raw):
		return entity.StatusProcessing, true
	default:
		return "", false
	}
}

// lookupStatus finds the status field at the top level, then in a data envelope
func lookupStatus(payload map[string]any) (string, bool) {
	scopes := []map[string]any{payload}
	if data, ok := payload["data"].(map[string]any); ok {
		scopes = append(scopes, data)
	}

	for _, scope := range scopes {
		for _, key := range statusFields {
			v, ok := scope[key]
			if !ok || v == nil {
				continue
			}
			s := strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
			if s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// ApplyWebhookEvent reconciles a provider callback. Replays, callbacks for
// terminal transactions and out-of-order callbacks are acknowledged without
// any mutation.
func (s *Service) ApplyWebhookEvent(
	ctx context.Context,
	reference string,
	payload map[string]any,
) (*usecase.WebhookResult, error) {
	if err := s.validator.ValidateReference(reference); err != nil {
		return nil, err
	}

	txn, err := s.repo.GetByMerchantReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	target, recognized := ImpliedStatus(payload)
	outcome := usecase.WebhookDuplicate

	switch {
	case txn.Status.IsTerminal():
		s.logger.Info("Webhook for terminal transaction acknowledged", map[string]any{
			"merchant_reference": reference,
			"status":             string(txn.Status),
		})

	case !recognized:
		outcome = usecase.WebhookIgnored
		s.logger.Warn("Webhook carries an unrecognized status", map[string]any{
			"merchant_reference": reference,
			"status":             string(txn.Status),
		})

	default:
		updated, changed, err := s.manager.Transition(ctx, txn, target, TransitionLenient, "webhook")
		if err != nil {
			return nil, err
		}
		txn = updated
		if changed {
			outcome = usecase.WebhookApplied
		}
	}

	s.manager.journal.record(ctx, txn, entity.EventWebhookReceived, string(outcome), payload)

	return &usecase.WebhookResult{
		Outcome:     outcome,
		Transaction: txn,
	}, nil
}
