package zenospay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
	mcore "github.com/amirhossein-jamali/topup-processor/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var signedAt = time.Unix(1735689600, 0)

func testClock(t *testing.T) *mcore.MockTimeProvider {
	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(signedAt).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(150 * time.Millisecond).Maybe()
	return clock
}

func testCodec(t *testing.T) *signature.Codec {
	t.Helper()
	privatePEM, publicPEM, err := signature.GenerateKeyPair(2048)
	require.NoError(t, err)
	codec, err := signature.NewCodec(privatePEM, publicPEM)
	require.NoError(t, err)
	return codec
}

var sampleRequest = payment.QrisRequest{
	ReferenceID:   "TRX-1735689600000-0A1B2C3D4E",
	Amount:        15000,
	PayerLabel:    "081234567890",
	QuantityLabel: "86",
	Description:   "Top Up 86 Diamonds",
}

func TestCreateQrisPaymentSignsAndNormalizes(t *testing.T) {
	codec := testCodec(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, CreateQrisPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "1735689600", r.Header.Get(HeaderTimestamp))
		assert.Equal(t, "partner-42", r.Header.Get(HeaderPartnerID))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// The provider hashes exactly the bytes it receives
		sts := signature.StringToSign(http.MethodPost, CreateQrisPath, body, r.Header.Get(HeaderTimestamp))
		assert.True(t, codec.Verify(sts, r.Header.Get(HeaderSignature)))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "15000", payload["amount"])
		assert.Equal(t, "IDR", payload["currency"])
		assert.Equal(t, sampleRequest.ReferenceID, payload["merchant_transaction_id"])
		assert.Equal(t, "081234567890", payload["customer_name"])
		assert.Equal(t, "86", payload["product_name"])
		assert.Equal(t, "Top Up 86 Diamonds", payload["description"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"qr_content":"00020101021226","qr_url":"https://zp.id/qr/1.png","transaction_id":987654}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", PartnerID: "partner-42"}, codec, testClock(t), logger.NewNoopLogger())

	result, err := client.CreateQrisPayment(context.Background(), sampleRequest)

	require.NoError(t, err)
	require.NotNil(t, result.QrString)
	assert.Equal(t, "00020101021226", *result.QrString)
	require.NotNil(t, result.QrURL)
	assert.Equal(t, "https://zp.id/qr/1.png", *result.QrURL)
	require.NotNil(t, result.ProviderTransactionID)
	assert.Equal(t, "987654", *result.ProviderTransactionID)
	assert.Nil(t, result.RedirectURL)
	assert.IsType(t, map[string]any{}, result.Raw)
}

func TestCreateQrisPaymentOmitsEmptyPartnerID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(HeaderPartnerID)]
		assert.False(t, present)
		_, _ = w.Write([]byte(`plain text ack`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, testCodec(t), testClock(t), logger.NewNoopLogger())

	result, err := client.CreateQrisPayment(context.Background(), sampleRequest)

	require.NoError(t, err)
	assert.Equal(t, "plain text ack", result.Raw)
	assert.Nil(t, result.QrString)
}

func TestCreateQrisPaymentFailures(t *testing.T) {
	t.Run("Non-2xx answer is a bad gateway with status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"invalid amount"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, testCodec(t), testClock(t), logger.NewNoopLogger())

		_, err := client.CreateQrisPayment(context.Background(), sampleRequest)

		pe, ok := errs.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, errs.ProviderBadGateway, pe.Kind)
		assert.Equal(t, http.StatusUnprocessableEntity, pe.StatusCode)
		assert.Equal(t, `{"message":"invalid amount"}`, pe.Body)
	})

	t.Run("Slow provider is a timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, testCodec(t), testClock(t), logger.NewNoopLogger())

		_, err := client.CreateQrisPayment(context.Background(), sampleRequest)

		pe, ok := errs.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, errs.ProviderTimeout, pe.Kind)
		assert.ErrorIs(t, err, errs.ErrProvider)
	})

	t.Run("Unreachable provider is unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewClient(Config{BaseURL: url}, testCodec(t), testClock(t), logger.NewNoopLogger())

		_, err := client.CreateQrisPayment(context.Background(), sampleRequest)

		pe, ok := errs.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, errs.ProviderUnavailable, pe.Kind)
		assert.True(t, pe.Retryable())
	})

	t.Run("Missing private key fails before any call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		codec, err := signature.NewCodec("", "")
		require.NoError(t, err)
		client := NewClient(Config{BaseURL: server.URL}, codec, testClock(t), logger.NewNoopLogger())

		_, err = client.CreateQrisPayment(context.Background(), sampleRequest)

		assert.ErrorIs(t, err, errs.ErrConfiguration)
		assert.False(t, called)
	})
}

func TestNormalizeQrisResponse(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		raw      any
		qr       *string
		qrURL    *string
		redirect *string
		txnID    *string
	}{
		{
			name:  "Envelope with snake case",
			raw:   map[string]any{"data": map[string]any{"qr_string": "QR1", "qr_code_url": "u1", "redirect_url": "r1", "transaction_id": "T1"}},
			qr:    str("QR1"),
			qrURL: str("u1"), redirect: str("r1"), txnID: str("T1"),
		},
		{
			name:  "Top level camel case",
			raw:   map[string]any{"qrString": "QR2", "codeUrl": "u2", "redirectUrl": "r2", "transactionId": json.Number("42")},
			qr:    str("QR2"),
			qrURL: str("u2"), redirect: str("r2"), txnID: str("42"),
		},
		{
			name: "Preferred alias wins",
			raw:  map[string]any{"qr_content": "first", "qrCode": "last"},
			qr:   str("first"),
		},
		{
			name: "Empty strings are skipped",
			raw:  map[string]any{"qr_content": "", "qr": "fallback"},
			qr:   str("fallback"),
		},
		{
			name:  "Float transaction id",
			raw:   map[string]any{"transaction_id": float64(1234567)},
			txnID: str("1234567"),
		},
		{
			name: "Array response",
			raw:  []any{"unexpected"},
		},
		{
			name: "Nil response",
			raw:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := NormalizeQrisResponse(tc.raw)
			assert.Equal(t, tc.qr, res.QrString)
			assert.Equal(t, tc.qrURL, res.QrURL)
			assert.Equal(t, tc.redirect, res.RedirectURL)
			assert.Equal(t, tc.txnID, res.ProviderTransactionID)
			assert.Equal(t, tc.raw, res.Raw)
		})
	}
}
