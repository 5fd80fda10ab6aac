package transaction

import (
	"context"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
)

// paymentJournal writes best-effort audit entries. A failed write is logged and
// never fails the operation that produced it.
type paymentJournal struct {
	events       persistence.PaymentEventRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

func (j *paymentJournal) record(
	ctx context.Context,
	txn *entity.Transaction,
	kind entity.EventKind,
	outcome string,
	payload map[string]any,
) {
	if j == nil || j.events == nil || txn == nil {
		return
	}

	evt := &entity.PaymentEvent{
		TransactionID:     txn.ID,
		MerchantReference: txn.MerchantReference,
		Kind:              kind,
		Outcome:           outcome,
		Payload:           payload,
		CreatedAt:         j.timeProvider.Now(),
	}
	if err := j.events.Record(ctx, evt); err != nil {
		j.logger.Warn("Failed to record payment event", map[string]any{
			"merchant_reference": txn.MerchantReference,
			"kind":               string(kind),
			"error":              err.Error(),
		})
	}
}
