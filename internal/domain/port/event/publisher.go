package event

import (
	"context"
	"time"
)

// TopicTransactionPaid is the default topic for fulfillment events
const TopicTransactionPaid = "transaction.paid"

// TransactionPaid is emitted once per transaction, when it first reaches success
type TransactionPaid struct {
	TransactionID     uint64    `json:"transaction_id"`
	MerchantReference string    `json:"merchant_transaction_id"`
	TotalDiamond      int64     `json:"total_diamond"`
	TotalAmount       int64     `json:"total_amount"`
	ContactReference  string    `json:"no_wa"`
	TargetID          string    `json:"target_id"`
	PaidAt            time.Time `json:"paid_at"`
}

// Publisher hands fulfillment events to downstream consumers
type Publisher interface {
	PublishTransactionPaid(ctx context.Context, evt TransactionPaid) error
	Close() error
}
