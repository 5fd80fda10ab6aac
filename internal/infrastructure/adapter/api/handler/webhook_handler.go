package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// MaxWebhookBodyBytes bounds the size of a provider callback
const MaxWebhookBodyBytes = 1 << 20

// Header names the provider has been seen to use, in order of preference
var (
	signatureHeaders = []string{"X-Signature", "X-Zenos-Signature", "Zenos-Signature"}
	timestampHeaders = []string{"X-Timestamp", "X-Zenos-Timestamp", "Zenos-Timestamp"}
)

// WebhookHandler receives payment provider callbacks
type WebhookHandler struct {
	transactions  usecase.TransactionUseCase
	authenticator payment.WebhookAuthenticator
	metrics       *metrics.Metrics
	logger        coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	transactions usecase.TransactionUseCase,
	authenticator payment.WebhookAuthenticator,
	m *metrics.Metrics,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		transactions:  transactions,
		authenticator: authenticator,
		metrics:       m,
		logger:        logger.With(map[string]any{"component": "webhook"}),
	}
}

// Zenospay handles POST /transactions/webhook/zenospay
func (h *WebhookHandler) Zenospay(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		h.reject(c, http.StatusBadRequest, "bad_request", "Unreadable webhook body", err)
		return
	}

	signature := firstHeader(c, signatureHeaders)
	timestamp := firstHeader(c, timestampHeaders)

	if err := h.authenticator.Authenticate(body, timestamp, signature); err != nil {
		h.logger.Warn("Webhook authentication failed", map[string]any{
			"error":         err,
			"has_signature": signature != "",
			"has_timestamp": timestamp != "",
			"client_ip":     c.ClientIP(),
		})
		h.metrics.CountWebhook("unauthorized")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeAuthentication,
			Message: "Invalid webhook signature",
		})
		return
	}

	payload, err := decodeObject(body)
	if err != nil {
		h.reject(c, http.StatusBadRequest, "bad_request", "Webhook body must be a JSON object", err)
		return
	}

	reference := extractReference(payload)
	if reference == "" {
		h.reject(c, http.StatusBadRequest, "bad_request", "Missing reference in webhook payload", nil)
		return
	}

	result, err := h.transactions.ApplyWebhookEvent(c.Request.Context(), reference, payload)
	if err != nil {
		if errors.Is(err, domainerr.ErrNotFound) {
			h.metrics.CountWebhook("not_found")
		} else {
			h.metrics.CountWebhook("error")
		}
		respondError(c, h.logger, "Webhook could not be applied", err)
		return
	}

	h.metrics.CountWebhook(string(result.Outcome))
	if result.Outcome == usecase.WebhookApplied {
		h.metrics.CountStatus(string(result.Transaction.Status))
	}

	h.logger.Info("Webhook processed", map[string]any{
		"merchant_reference": reference,
		"outcome":            string(result.Outcome),
		"status":             string(result.Transaction.Status),
	})
	c.String(http.StatusOK, "OK")
}

func (h *WebhookHandler) reject(c *gin.Context, status int, result, message string, err error) {
	fields := map[string]any{"reason": message}
	if err != nil {
		fields["error"] = err
	}
	h.logger.Warn("Webhook rejected", fields)
	h.metrics.CountWebhook(result)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: message,
	})
}

func firstHeader(c *gin.Context, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.GetHeader(name)); v != "" {
			return v
		}
	}
	return ""
}

// decodeObject parses a JSON object, keeping numbers verbatim
func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("body is null")
	}
	return payload, nil
}

// extractReference reads merchant_transaction_id at the top level, then in a data envelope
func extractReference(payload map[string]any) string {
	scopes := []map[string]any{payload}
	if data, ok := payload["data"].(map[string]any); ok {
		scopes = append(scopes, data)
	}

	for _, scope := range scopes {
		switch v := scope["merchant_transaction_id"].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
