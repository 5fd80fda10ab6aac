package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/provider/zenospay"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
	timeprovider "github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stack is a router backed by a real database and a fake provider
type stack struct {
	router        *gin.Engine
	codec         *signature.Codec
	tokens        *auth.TokenManager
	events        *repository.PaymentEventRepository
	providerCalls *atomic.Int32
}

func newStack(t *testing.T) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()

	privatePEM, publicPEM, err := signature.GenerateKeyPair(2048)
	require.NoError(t, err)
	codec, err := signature.NewCodec(privatePEM, publicPEM)
	require.NoError(t, err)

	calls := &atomic.Int32{}
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"success":true,"data":{"qr_content":"000201QR%d","transaction_id":"ZP-%d"}}`, n, n)
	}))
	t.Cleanup(provider.Close)

	tdb := database.NewTestDBManager(t, log)
	db := tdb.Connect(t)

	transactions := repository.NewTransactionRepository(db, log)
	events := repository.NewPaymentEventRepository(db, log)
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg)

	client := zenospay.NewClient(zenospay.Config{BaseURL: provider.URL}, codec, clock, log, zenospay.WithMetrics(m))
	service := transaction.NewService(transactions, client, clock, log, transaction.WithPaymentEvents(events))
	verifier := signature.NewWebhookVerifier(codec, APIPrefix+WebhookPath, true)

	tokens, err := auth.NewTokenManager("routes-test-secret", "topup-processor", clock)
	require.NoError(t, err)

	router := NewRouter(Handlers{
		Transactions: handler.NewTransactionHandler(service, m, log),
		Webhooks:     handler.NewWebhookHandler(service, verifier, m, log),
		Health:       handler.NewHealthHandler(tdb.Manager, log),
	}, tokens, m, log, clock)

	return &stack{router: router, codec: codec, tokens: tokens, events: events, providerCalls: calls}
}

func (s *stack) do(t *testing.T, method, path string, body []byte, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func (s *stack) adminHeaders(t *testing.T) map[string]string {
	t.Helper()
	token, _, err := s.tokens.Issue("ops@example.com", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// signedWebhook signs payload the way the provider does for the callback route
func (s *stack) signedWebhook(t *testing.T, payload map[string]any) ([]byte, map[string]string) {
	t.Helper()
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	body, sig, err := s.codec.SignPayload(http.MethodPost, APIPrefix+WebhookPath, payload, ts)
	require.NoError(t, err)
	return body, map[string]string{"X-Signature": sig, "X-Timestamp": ts}
}

func (s *stack) create(t *testing.T) (uint64, string) {
	t.Helper()
	rec, body := s.do(t, http.MethodPost, "/api/transactions",
		[]byte(`{"total_diamond":86,"total_amount":15000,"no_wa":"081234567890","target_id":123456}`), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	txn := body["transaction"].(map[string]any)
	return uint64(txn["id"].(float64)), txn["merchant_transaction_id"].(string)
}

func (s *stack) status(t *testing.T, reference string) string {
	t.Helper()
	rec, body := s.do(t, http.MethodGet, "/api/transactions/status?merchant_transaction_id="+reference+"&no_wa=081234567890", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return body["status"].(string)
}

func TestPaymentLifecycle(t *testing.T) {
	s := newStack(t)

	id, reference := s.create(t)
	assert.Regexp(t, `^TRX-\d{13}-[0-9A-F]{10}$`, reference)
	assert.Equal(t, "pending", s.status(t, reference))

	rec, body := s.do(t, http.MethodPost, fmt.Sprintf("/api/transactions/%d/pay/qris", id), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, reference, body["reference_id"])
	assert.Equal(t, "000201QR1", body["qris"].(map[string]any)["qr_string"])
	assert.Equal(t, "processing", s.status(t, reference))

	payload, headers := s.signedWebhook(t, map[string]any{"merchant_transaction_id": reference, "status": "PAID"})
	rec, _ = s.do(t, http.MethodPost, "/api/transactions/webhook/zenospay", payload, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "success", s.status(t, reference))

	// A replayed delivery changes nothing
	rec, _ = s.do(t, http.MethodPost, "/api/transactions/webhook/zenospay", payload, headers)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", s.status(t, reference))

	// A late failure notice cannot undo a settled payment
	payload, headers = s.signedWebhook(t, map[string]any{"data": map[string]any{"merchant_transaction_id": reference, "status": "expired"}})
	rec, _ = s.do(t, http.MethodPost, "/api/transactions/webhook/zenospay", payload, headers)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", s.status(t, reference))

	// Completed transactions cannot be charged again
	rec, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/transactions/%d/pay/qris", id), nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(1), s.providerCalls.Load())

	events, err := s.events.ListByTransaction(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, entity.EventPaymentInitiated, events[0].Kind)
}

func TestWebhookWithBadSignatureLeavesStatusUnchanged(t *testing.T) {
	s := newStack(t)
	_, reference := s.create(t)

	payload, headers := s.signedWebhook(t, map[string]any{"merchant_transaction_id": reference, "status": "paid"})
	headers["X-Timestamp"] = "1"

	rec, body := s.do(t, http.MethodPost, "/api/transactions/webhook/zenospay", payload, headers)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid webhook signature", body["message"])
	assert.Equal(t, "pending", s.status(t, reference))
}

func TestWebhookForUnknownReference(t *testing.T) {
	s := newStack(t)

	payload, headers := s.signedWebhook(t, map[string]any{"merchant_transaction_id": "TRX-0000000000000-FFFFFFFFFF"})
	rec, _ := s.do(t, http.MethodPost, "/api/transactions/webhook/zenospay", payload, headers)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusPollHidesOtherContacts(t *testing.T) {
	s := newStack(t)
	_, reference := s.create(t)

	rec, _ := s.do(t, http.MethodGet, "/api/transactions/status?merchant_transaction_id="+reference+"&no_wa=089999999999", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdministrativeRoutes(t *testing.T) {
	s := newStack(t)
	id, reference := s.create(t)
	s.create(t)

	t.Run("Require an admin token", func(t *testing.T) {
		for _, path := range []string{"/api/transactions", fmt.Sprintf("/api/transactions/%d", id)} {
			rec, _ := s.do(t, http.MethodGet, path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
		rec, _ := s.do(t, http.MethodPut, "/api/transactions/merchant/status",
			[]byte(`{"merchant_transaction_id":"`+reference+`","status":"failed"}`), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("List newest first", func(t *testing.T) {
		rec, body := s.do(t, http.MethodGet, "/api/transactions?limit=1", nil, s.adminHeaders(t))
		require.Equal(t, http.StatusOK, rec.Code)

		items := body["transactions"].([]any)
		require.Len(t, items, 1)
		assert.NotEqual(t, float64(id), items[0].(map[string]any)["id"])
		assert.Equal(t, float64(2), body["pagination"].(map[string]any)["totalPages"])
	})

	t.Run("Override by reference", func(t *testing.T) {
		rec, body := s.do(t, http.MethodPut, "/api/transactions/merchant/status",
			[]byte(`{"merchant_transaction_id":"`+reference+`","status":"failed"}`), s.adminHeaders(t))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "failed", body["transaction"].(map[string]any)["status"])

		rec, _ = s.do(t, http.MethodPut, "/api/transactions/merchant/status",
			[]byte(`{"merchant_transaction_id":"`+reference+`","status":"failed"}`), s.adminHeaders(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failed transactions cannot be charged", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, fmt.Sprintf("/api/transactions/%d/pay/qris", id), nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Read by id", func(t *testing.T) {
		rec, body := s.do(t, http.MethodGet, fmt.Sprintf("/api/transactions/%d", id), nil, s.adminHeaders(t))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(123456), body["transaction"].(map[string]any)["target_id"])
	})
}

func TestOperationalRoutes(t *testing.T) {
	s := newStack(t)

	rec, body := s.do(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, _ = s.do(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "topup_http_requests_total")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
