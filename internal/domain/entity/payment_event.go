package entity

import "time"

// EventKind identifies what happened to a transaction in the payment journal
type EventKind string

// Journal event kinds
const (
	EventPaymentInitiated  EventKind = "payment_initiated"
	EventWebhookReceived   EventKind = "webhook_received"
	EventStatusChanged     EventKind = "status_changed"
	EventFulfillmentFailed EventKind = "fulfillment_failed"
)

// PaymentEvent is an append-only journal entry describing a payment interaction
type PaymentEvent struct {
	ID                uint64
	TransactionID     uint64
	MerchantReference string
	Kind              EventKind
	Outcome           string
	Payload           map[string]any
	CreatedAt         time.Time
}
