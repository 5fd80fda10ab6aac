package signature

import (
	"fmt"
	"net/http"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
)

// WebhookVerifier authenticates provider callbacks against the configured callback path
type WebhookVerifier struct {
	codec        *Codec
	callbackPath string
	enabled      bool
}

// NewWebhookVerifier creates a verifier. With enabled=false every callback is accepted.
func NewWebhookVerifier(codec *Codec, callbackPath string, enabled bool) *WebhookVerifier {
	return &WebhookVerifier{
		codec:        codec,
		callbackPath: callbackPath,
		enabled:      enabled,
	}
}

// Enabled reports whether verification is switched on
func (v *WebhookVerifier) Enabled() bool {
	return v.enabled
}

// Authenticate recomputes the string-to-sign for POST <callbackPath> over the
// canonical body and the received timestamp, and checks the signature
func (v *WebhookVerifier) Authenticate(body []byte, timestamp, signature string) error {
	if !v.enabled {
		return nil
	}
	if signature == "" || timestamp == "" {
		return fmt.Errorf("%w: missing signature or timestamp header", errs.ErrAuthentication)
	}

	canonical, err := CanonicalJSON(body)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAuthentication, err)
	}

	if !v.codec.Verify(StringToSign(http.MethodPost, v.callbackPath, canonical, timestamp), signature) {
		return fmt.Errorf("%w: invalid webhook signature", errs.ErrAuthentication)
	}
	return nil
}

var _ payment.WebhookAuthenticator = (*WebhookVerifier)(nil)
