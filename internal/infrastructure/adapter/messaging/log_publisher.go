package messaging

import (
	"context"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
)

// LogPublisher only logs fulfillment events; used when Kafka is disabled
type LogPublisher struct {
	logger coreport.Logger
}

// NewLogPublisher creates a publisher that writes events to the log
func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// PublishTransactionPaid logs the event
func (p *LogPublisher) PublishTransactionPaid(_ context.Context, evt event.TransactionPaid) error {
	p.logger.Info("Transaction paid", map[string]any{
		"transaction_id":     evt.TransactionID,
		"merchant_reference": evt.MerchantReference,
		"total_diamond":      evt.TotalDiamond,
		"target_id":          evt.TargetID,
	})
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error {
	return nil
}

var _ event.Publisher = (*LogPublisher)(nil)
