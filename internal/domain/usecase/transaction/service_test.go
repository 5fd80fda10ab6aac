package transaction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	portuse "github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
	mcache "github.com/amirhossein-jamali/topup-processor/mocks/port/cache"
	mcore "github.com/amirhossein-jamali/topup-processor/mocks/port/core"
	mevent "github.com/amirhossein-jamali/topup-processor/mocks/port/event"
	mpay "github.com/amirhossein-jamali/topup-processor/mocks/port/payment"
	mpers "github.com/amirhossein-jamali/topup-processor/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testReference = "TRX-1735689600000-0A1B2C3D4E"

var (
	createdAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now       = createdAt.Add(5 * time.Minute)
)

type serviceFixture struct {
	repo      *mpers.MockTransactionRepository
	events    *mpers.MockPaymentEventRepository
	provider  *mpay.MockProvider
	publisher *mevent.MockPublisher
	cache     *mcache.MockStatusCache
	svc       *Service
}

func quietLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedClock(t *testing.T) *mcore.MockTimeProvider {
	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func newFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		repo:      mpers.NewMockTransactionRepository(t),
		events:    mpers.NewMockPaymentEventRepository(t),
		provider:  mpay.NewMockProvider(t),
		publisher: mevent.NewMockPublisher(t),
		cache:     mcache.NewMockStatusCache(t),
	}
	f.svc = NewService(
		f.repo,
		f.provider,
		fixedClock(t),
		quietLogger(t),
		WithPaymentEvents(f.events),
		WithPublisher(f.publisher),
		WithStatusCache(f.cache),
		WithReferenceGenerator(func(time.Time) string { return testReference }),
	)
	return f
}

// allowJournal accepts any journal write; register specific expectations first
func (f *serviceFixture) allowJournal() {
	f.events.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func sampleTransaction(status entity.Status) *entity.Transaction {
	return &entity.Transaction{
		ID:                7,
		MerchantReference: testReference,
		TotalDiamond:      86,
		TotalAmount:       20000,
		ContactReference:  "081234567890",
		TargetID:          "1234(5678)",
		Status:            status,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists a pending transaction with a fresh reference", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).
			RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
				txn.ID = 1
				return nil
			}).Once()

		txn, err := f.svc.Create(ctx, portuse.CreateTransactionRequest{
			TotalDiamond:     86,
			TotalAmount:      20000,
			ContactReference: "081234567890",
			TargetID:         "1234(5678)",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), txn.ID)
		assert.Equal(t, testReference, txn.MerchantReference)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, now, txn.CreatedAt)
	})

	t.Run("Rejects non-positive amounts without touching the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, portuse.CreateTransactionRequest{
			TotalDiamond:     86,
			TotalAmount:      0,
			ContactReference: "0812",
		})

		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})

	t.Run("Rejects a missing contact", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, portuse.CreateTransactionRequest{TotalDiamond: 1, TotalAmount: 1})

		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})

	t.Run("Surfaces a reference collision", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrs.ErrDuplicateReference).Once()

		_, err := f.svc.Create(ctx, portuse.CreateTransactionRequest{
			TotalDiamond:     1,
			TotalAmount:      1000,
			ContactReference: "0812",
		})

		assert.ErrorIs(t, err, domainerrs.ErrDuplicateReference)
		assert.ErrorIs(t, err, domainerrs.ErrPersistence)
	})
}

func TestInitiatePayment(t *testing.T) {
	ctx := context.Background()
	qris := &payment.QrisResult{
		QrString:              strPtr("00020101021126"),
		ProviderTransactionID: strPtr("ZP-991"),
		Raw:                   map[string]any{"status": "ok"},
	}
	expectedRequest := payment.QrisRequest{
		ReferenceID:   testReference,
		Amount:        20000,
		PayerLabel:    "081234567890",
		QuantityLabel: "86",
		Description:   "Top Up 86 Diamonds",
	}

	t.Run("Pending transaction moves to processing", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusPending), nil).Once()
		f.provider.EXPECT().CreateQrisPayment(ctx, expectedRequest).Return(qris, nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusPending, entity.StatusProcessing, now).
			Return(true, nil).Once()

		result, err := f.svc.InitiatePayment(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, testReference, result.ReferenceID)
		assert.Equal(t, uint64(7), result.TransactionID)
		assert.Same(t, qris, result.Qris)
	})

	t.Run("Processing transaction gets a new code without a status change", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusProcessing), nil).Once()
		f.provider.EXPECT().CreateQrisPayment(ctx, expectedRequest).Return(qris, nil).Once()

		result, err := f.svc.InitiatePayment(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, testReference, result.ReferenceID)
	})

	t.Run("Lost race against a webhook is accepted", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusPending), nil).Once()
		f.provider.EXPECT().CreateQrisPayment(ctx, expectedRequest).Return(qris, nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusPending, entity.StatusProcessing, now).
			Return(false, nil).Once()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusSuccess), nil).Once()

		result, err := f.svc.InitiatePayment(ctx, 7)

		require.NoError(t, err)
		assert.NotNil(t, result.Qris)
	})

	for _, status := range []entity.Status{entity.StatusSuccess, entity.StatusFailed} {
		t.Run("Refuses "+string(status)+" transaction", func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(status), nil).Once()

			_, err := f.svc.InitiatePayment(ctx, 7)

			assert.ErrorIs(t, err, domainerrs.ErrInvalidState)
		})
	}

	t.Run("Unknown transaction", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, domainerrs.ErrTransactionNotFound).Once()

		_, err := f.svc.InitiatePayment(ctx, 99)

		assert.ErrorIs(t, err, domainerrs.ErrNotFound)
	})

	t.Run("Provider failure leaves the status untouched", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusPending), nil).Once()
		providerErr := domainerrs.NewProviderError(domainerrs.ProviderBadGateway, 500, "boom", nil)
		f.provider.EXPECT().CreateQrisPayment(ctx, expectedRequest).Return(nil, providerErr).Once()

		_, err := f.svc.InitiatePayment(ctx, 7)

		require.Error(t, err)
		pe, ok := domainerrs.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, 500, pe.StatusCode)
		f.repo.AssertNotCalled(t, "CompareAndSetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplyWebhookEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Payment notification completes a processing transaction", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusProcessing, entity.StatusSuccess, now).
			Return(true, nil).Once()
		f.publisher.EXPECT().PublishTransactionPaid(ctx, mock.MatchedBy(func(evt event.TransactionPaid) bool {
			return evt.MerchantReference == testReference && evt.TotalDiamond == 86 && evt.PaidAt.Equal(now)
		})).Return(nil).Once()
		f.cache.EXPECT().Put(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusSuccess
		})).Return(nil).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{
			"merchant_transaction_id": testReference,
		})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookApplied, result.Outcome)
		assert.Equal(t, entity.StatusSuccess, result.Transaction.Status)
		assert.Equal(t, now, result.Transaction.UpdatedAt)
	})

	t.Run("Replay for a terminal transaction is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusSuccess), nil).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{"status": "failed"})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookDuplicate, result.Outcome)
		assert.Equal(t, entity.StatusSuccess, result.Transaction.Status)
	})

	t.Run("Failure status fails the transaction without fulfillment", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusPending), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusPending, entity.StatusFailed, now).
			Return(true, nil).Once()
		f.cache.EXPECT().Put(ctx, mock.Anything).Return(nil).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{
			"data": map[string]any{"transaction_status": "EXPIRED"},
		})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookApplied, result.Outcome)
		assert.Equal(t, entity.StatusFailed, result.Transaction.Status)
	})

	t.Run("Unrecognized status is acknowledged and ignored", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusPending), nil).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{"status": "refund_requested"})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookIgnored, result.Outcome)
		assert.Equal(t, entity.StatusPending, result.Transaction.Status)
	})

	t.Run("Lost race against a concurrent delivery does not publish twice", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusProcessing, entity.StatusSuccess, now).
			Return(false, nil).Once()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusSuccess), nil).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{"status": "paid"})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookDuplicate, result.Outcome)
		f.publisher.AssertNotCalled(t, "PublishTransactionPaid", mock.Anything, mock.Anything)
	})

	t.Run("Publish failure is journaled and does not fail the delivery", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().Record(ctx, mock.MatchedBy(func(e *entity.PaymentEvent) bool {
			return e.Kind == entity.EventFulfillmentFailed
		})).Return(nil).Once()
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusPending), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusPending, entity.StatusSuccess, now).
			Return(true, nil).Once()
		f.publisher.EXPECT().PublishTransactionPaid(ctx, mock.Anything).Return(errors.New("broker down")).Once()
		f.cache.EXPECT().Put(ctx, mock.Anything).Return(errors.New("redis down")).Once()

		result, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{"status": "settled"})

		require.NoError(t, err)
		assert.Equal(t, portuse.WebhookApplied, result.Outcome)
	})

	t.Run("Unknown reference", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByMerchantReference(ctx, "TRX-nope").Return(nil, domainerrs.ErrTransactionNotFound).Once()

		_, err := f.svc.ApplyWebhookEvent(ctx, "TRX-nope", map[string]any{})

		assert.ErrorIs(t, err, domainerrs.ErrTransactionNotFound)
	})

	t.Run("Swap that never settles is reported", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusProcessing, entity.StatusSuccess, now).
			Return(false, nil).Times(defaultStatusAttempts)
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusProcessing), nil).Times(defaultStatusAttempts)

		_, err := f.svc.ApplyWebhookEvent(ctx, testReference, map[string]any{})

		assert.ErrorIs(t, err, domainerrs.ErrPersistence)
	})
}

func TestImpliedStatus(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		expected entity.Status
		ok       bool
	}{
		{"No status field", map[string]any{"merchant_transaction_id": "x"}, entity.StatusSuccess, true},
		{"Paid", map[string]any{"status": "PAID"}, entity.StatusSuccess, true},
		{"Completed in data", map[string]any{"data": map[string]any{"payment_status": "completed"}}, entity.StatusSuccess, true},
		{"Expired", map[string]any{"transaction_status": "expired"}, entity.StatusFailed, true},
		{"Canceled", map[string]any{"status": "canceled"}, entity.StatusFailed, true},
		{"Pending", map[string]any{"status": "pending"}, entity.StatusProcessing, true},
		{"Blank status counts as missing", map[string]any{"status": "  "}, entity.StatusSuccess, true},
		{"Unknown", map[string]any{"status": "chargeback"}, "", false},
		{"Top level wins over data", map[string]any{"status": "failed", "data": map[string]any{"status": "paid"}}, entity.StatusFailed, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, ok := ImpliedStatus(tc.payload)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestCheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner sees the transaction", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, testReference).Return(nil, false, nil).Once()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()

		txn, err := f.svc.CheckStatus(ctx, testReference, "081234567890")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusProcessing, txn.Status)
	})

	t.Run("Other contact gets the same answer as an unknown reference", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, testReference).Return(nil, false, nil).Once()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()

		txn, err := f.svc.CheckStatus(ctx, testReference, "089999999999")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, domainerrs.ErrTransactionNotFound)
	})

	t.Run("Terminal transaction is cached after a store read", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, testReference).Return(nil, false, nil).Once()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusSuccess), nil).Once()
		f.cache.EXPECT().Put(ctx, mock.Anything).Return(nil).Once()

		txn, err := f.svc.CheckStatus(ctx, testReference, "081234567890")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, txn.Status)
	})

	t.Run("Cache hit skips the store but still checks ownership", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, testReference).Return(sampleTransaction(entity.StatusFailed), true, nil).Twice()

		txn, err := f.svc.CheckStatus(ctx, testReference, "081234567890")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, txn.Status)

		_, err = f.svc.CheckStatus(ctx, testReference, "0800")
		assert.ErrorIs(t, err, domainerrs.ErrTransactionNotFound)
	})

	t.Run("Cache errors fall back to the store", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, testReference).Return(nil, false, errors.New("timeout")).Once()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusPending), nil).Once()

		_, err := f.svc.CheckStatus(ctx, testReference, "081234567890")

		require.NoError(t, err)
	})

	t.Run("Missing inputs", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckStatus(ctx, "", "0812")
		assert.ErrorIs(t, err, domainerrs.ErrValidation)

		_, err = f.svc.CheckStatus(ctx, testReference, "")
		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})
}

func TestAdministrativeStatusUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Allowed transition by reference", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusProcessing, entity.StatusFailed, now).
			Return(true, nil).Once()
		f.cache.EXPECT().Put(ctx, mock.Anything).Return(nil).Once()

		txn, err := f.svc.UpdateStatusByReference(ctx, testReference, "FAILED")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, txn.Status)
	})

	t.Run("Success by id publishes fulfillment", func(t *testing.T) {
		f := newFixture(t)
		f.allowJournal()
		f.repo.EXPECT().GetByID(ctx, uint64(7)).Return(sampleTransaction(entity.StatusPending), nil).Once()
		f.repo.EXPECT().CompareAndSetStatus(ctx, uint64(7), entity.StatusPending, entity.StatusSuccess, now).
			Return(true, nil).Once()
		f.publisher.EXPECT().PublishTransactionPaid(ctx, mock.Anything).Return(nil).Once()
		f.cache.EXPECT().Put(ctx, mock.Anything).Return(nil).Once()

		txn, err := f.svc.UpdateStatusByID(ctx, 7, "success")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, txn.Status)
	})

	t.Run("Same status is a validation error", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusProcessing), nil).Once()

		_, err := f.svc.UpdateStatusByReference(ctx, testReference, "processing")

		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})

	t.Run("Backward transition is an invalid state error", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByMerchantReference(ctx, testReference).Return(sampleTransaction(entity.StatusSuccess), nil).Once()

		_, err := f.svc.UpdateStatusByReference(ctx, testReference, "pending")

		assert.ErrorIs(t, err, domainerrs.ErrInvalidState)
		var ite *domainerrs.InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, "success", ite.From)
		assert.Equal(t, "pending", ite.To)
	})

	t.Run("Unknown status and empty reference", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatusByReference(ctx, testReference, "refunded")
		assert.ErrorIs(t, err, domainerrs.ErrValidation)

		_, err = f.svc.UpdateStatusByReference(ctx, "", "success")
		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})

	t.Run("Unknown reference", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByMerchantReference(ctx, "TRX-x").Return(nil, domainerrs.ErrTransactionNotFound).Once()

		_, err := f.svc.UpdateStatusByReference(ctx, "TRX-x", "success")

		assert.ErrorIs(t, err, domainerrs.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies defaults", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(ctx, persistence.ListFilter{Page: 1, Limit: 10}).
			Return([]*entity.Transaction{sampleTransaction(entity.StatusPending)}, int64(21), nil).Once()

		page, err := f.svc.List(ctx, portuse.ListTransactionsRequest{})

		require.NoError(t, err)
		assert.Len(t, page.Transactions, 1)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 3, page.TotalPages())
	})

	t.Run("Caps the limit and filters by status", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(ctx, mock.MatchedBy(func(filter persistence.ListFilter) bool {
			return filter.Page == 2 && filter.Limit == 100 && filter.Status != nil && *filter.Status == entity.StatusSuccess
		})).Return(nil, int64(0), nil).Once()

		page, err := f.svc.List(ctx, portuse.ListTransactionsRequest{Page: 2, Limit: 500, Status: "success"})

		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("Rejects an unknown status filter", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.List(ctx, portuse.ListTransactionsRequest{Status: "weird"})

		assert.ErrorIs(t, err, domainerrs.ErrValidation)
	})
}

// memoryRepository is a minimal store with a real compare-and-set, used to race deliveries
type memoryRepository struct {
	mu   sync.Mutex
	rows map[uint64]entity.Transaction
}

func (r *memoryRepository) Create(_ context.Context, txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn.ID = uint64(len(r.rows) + 1)
	r.rows[txn.ID] = *txn
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domainerrs.ErrTransactionNotFound
	}
	return &row, nil
}

func (r *memoryRepository) GetByMerchantReference(_ context.Context, reference string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.MerchantReference == reference {
			found := row
			return &found, nil
		}
	}
	return nil, domainerrs.ErrTransactionNotFound
}

func (r *memoryRepository) List(context.Context, persistence.ListFilter) ([]*entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *memoryRepository) CompareAndSetStatus(_ context.Context, id uint64, from, to entity.Status, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Status != from {
		return false, nil
	}
	row.Status = to
	row.UpdatedAt = at
	r.rows[id] = row
	return true, nil
}

func TestConcurrentWebhooksPublishOnce(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{rows: map[uint64]entity.Transaction{}}
	publisher := mevent.NewMockPublisher(t)
	publisher.EXPECT().PublishTransactionPaid(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(repo, mpay.NewMockProvider(t), fixedClock(t), quietLogger(t),
		WithPublisher(publisher),
		WithReferenceGenerator(func(time.Time) string { return testReference }),
	)

	txn, err := svc.Create(ctx, portuse.CreateTransactionRequest{
		TotalDiamond:     86,
		TotalAmount:      20000,
		ContactReference: "081234567890",
	})
	require.NoError(t, err)

	const deliveries = 20
	outcomes := make(chan portuse.WebhookOutcome, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.ApplyWebhookEvent(ctx, txn.MerchantReference, map[string]any{"status": "success"})
			if assert.NoError(t, err) {
				outcomes <- res.Outcome
			}
		}()
	}
	wg.Wait()
	close(outcomes)

	applied := 0
	for o := range outcomes {
		if o == portuse.WebhookApplied {
			applied++
		}
	}
	assert.Equal(t, 1, applied)

	stored, err := repo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, stored.Status)
}
