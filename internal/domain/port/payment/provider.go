package payment

import "context"

// QrisRequest is what the lifecycle manager asks the provider to charge
type QrisRequest struct {
	ReferenceID   string // merchant reference, echoed back in webhooks
	Amount        int64  // IDR
	PayerLabel    string // shown as customer name
	QuantityLabel string // shown as product name
	Description   string
}

// QrisResult is the normalized outcome of a QRIS creation call. Any field the
// provider did not return is nil.
type QrisResult struct {
	QrString              *string
	QrURL                 *string
	RedirectURL           *string
	ProviderTransactionID *string
	Raw                   any
}

// Provider creates QRIS payments at the payment provider
type Provider interface {
	// CreateQrisPayment performs one signed call. Failures are *error.ProviderError.
	CreateQrisPayment(ctx context.Context, req QrisRequest) (*QrisResult, error)
}

// WebhookAuthenticator checks that an inbound callback was signed by the provider
type WebhookAuthenticator interface {
	// Authenticate returns ErrAuthentication when the signature does not match body and timestamp
	Authenticate(body []byte, timestamp, signature string) error
	// Enabled reports whether verification is switched on
	Enabled() bool
}
