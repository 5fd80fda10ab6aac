package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/logger"
	mpayment "github.com/amirhossein-jamali/topup-processor/mocks/port/payment"
	musecase "github.com/amirhossein-jamali/topup-processor/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookPath = "/transactions/webhook/zenospay"

func webhookRouter(uc usecase.TransactionUseCase, authn payment.WebhookAuthenticator) *gin.Engine {
	h := NewWebhookHandler(uc, authn, nil, logger.NewNoopLogger())
	router := gin.New()
	router.POST(webhookPath, h.Zenospay)
	return router
}

func TestWebhookAppliesAuthenticatedDelivery(t *testing.T) {
	body := `{"merchant_transaction_id":"TRX-1","status":"paid","amount":15000}`

	authn := mpayment.NewMockWebhookAuthenticator(t)
	authn.EXPECT().Authenticate([]byte(body), "1735689600", "c2ln").Return(nil)

	uc := musecase.NewMockTransactionUseCase(t)
	uc.EXPECT().ApplyWebhookEvent(mock.Anything, "TRX-1", mock.MatchedBy(func(p map[string]any) bool {
		return p["status"] == "paid" && p["amount"] != nil
	})).Return(&usecase.WebhookResult{
		Outcome:     usecase.WebhookApplied,
		Transaction: sampleTransaction(entity.StatusSuccess),
	}, nil)

	rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath, body, map[string]string{
		"X-Signature": "c2ln",
		"X-Timestamp": "1735689600",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestWebhookHeaderFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		ts, sig string
	}{
		{
			name:    "Zenos prefixed",
			headers: map[string]string{"X-Zenos-Signature": "s1", "X-Zenos-Timestamp": "t1"},
			ts:      "t1", sig: "s1",
		},
		{
			name:    "Bare names",
			headers: map[string]string{"Zenos-Signature": "s2", "Zenos-Timestamp": "t2"},
			ts:      "t2", sig: "s2",
		},
		{
			name:    "Preferred name wins",
			headers: map[string]string{"X-Signature": "s3", "Zenos-Signature": "other", "X-Timestamp": "t3"},
			ts:      "t3", sig: "s3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"data":{"merchant_transaction_id":"TRX-2"}}`

			authn := mpayment.NewMockWebhookAuthenticator(t)
			authn.EXPECT().Authenticate([]byte(body), tc.ts, tc.sig).Return(nil)

			uc := musecase.NewMockTransactionUseCase(t)
			uc.EXPECT().ApplyWebhookEvent(mock.Anything, "TRX-2", mock.Anything).Return(&usecase.WebhookResult{
				Outcome:     usecase.WebhookDuplicate,
				Transaction: sampleTransaction(entity.StatusSuccess),
			}, nil)

			rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath, body, tc.headers)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestWebhookRejections(t *testing.T) {
	t.Run("Bad signature never reaches the lifecycle", func(t *testing.T) {
		authn := mpayment.NewMockWebhookAuthenticator(t)
		authn.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).Return(errs.ErrAuthentication)
		uc := musecase.NewMockTransactionUseCase(t)

		rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath,
			`{"merchant_transaction_id":"TRX-1","status":"paid"}`, map[string]string{"X-Signature": "forged"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid webhook signature", decode(t, rec)["message"])
	})

	bad := []struct {
		name string
		body string
	}{
		{"Missing reference", `{"status":"paid"}`},
		{"Blank reference", `{"merchant_transaction_id":"  ","data":{}}`},
		{"Array body", `[{"merchant_transaction_id":"TRX-1"}]`},
		{"Null body", `null`},
		{"Not JSON", `status=paid`},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			authn := mpayment.NewMockWebhookAuthenticator(t)
			authn.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			uc := musecase.NewMockTransactionUseCase(t)

			rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath, tc.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("Unknown reference", func(t *testing.T) {
		authn := mpayment.NewMockWebhookAuthenticator(t)
		authn.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := musecase.NewMockTransactionUseCase(t)
		uc.EXPECT().ApplyWebhookEvent(mock.Anything, "TRX-404", mock.Anything).Return(nil, errs.ErrTransactionNotFound)

		rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath,
			`{"merchant_transaction_id":"TRX-404"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Oversized body", func(t *testing.T) {
		authn := mpayment.NewMockWebhookAuthenticator(t)
		uc := musecase.NewMockTransactionUseCase(t)

		huge := `{"merchant_transaction_id":"TRX-1","pad":"` + strings.Repeat("x", MaxWebhookBodyBytes) + `"}`
		rec := perform(t, webhookRouter(uc, authn), http.MethodPost, webhookPath, huge, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExtractReference(t *testing.T) {
	assert.Equal(t, "TOP", extractReference(map[string]any{
		"merchant_transaction_id": "TOP",
		"data":                    map[string]any{"merchant_transaction_id": "NESTED"},
	}))
	assert.Equal(t, "NESTED", extractReference(map[string]any{
		"data": map[string]any{"merchant_transaction_id": "NESTED"},
	}))
	assert.Empty(t, extractReference(map[string]any{"data": "TRX-1"}))
}
