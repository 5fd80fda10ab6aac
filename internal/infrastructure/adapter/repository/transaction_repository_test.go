package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func newTestTransactionRepository(t *testing.T) *TransactionRepository {
	t.Helper()
	log := logger.NewNoopLogger()
	return NewTransactionRepository(database.NewTestDB(t, log), log)
}

func newTransaction(reference string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		MerchantReference: reference,
		TotalDiamond:      86,
		TotalAmount:       15000,
		ContactReference:  "081234567890",
		TargetID:          "123456789(1234)",
		Status:            entity.StatusPending,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func TestTransactionRepositoryCreateAndGet(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	txn := newTransaction("TRX-1735718400000-AAAAAAAAAA", baseTime)
	require.NoError(t, repo.Create(ctx, txn))
	require.NotZero(t, txn.ID)

	byID, err := repo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.MerchantReference, byID.MerchantReference)
	assert.Equal(t, int64(86), byID.TotalDiamond)
	assert.Equal(t, int64(15000), byID.TotalAmount)
	assert.Equal(t, "081234567890", byID.ContactReference)
	assert.Equal(t, "123456789(1234)", byID.TargetID)
	assert.Equal(t, entity.StatusPending, byID.Status)
	assert.True(t, byID.CreatedAt.Equal(baseTime))

	byRef, err := repo.GetByMerchantReference(ctx, txn.MerchantReference)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, byRef.ID)
}

func TestTransactionRepositoryNotFound(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	_, err = repo.GetByMerchantReference(ctx, "TRX-0-MISSING")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTransactionRepositoryDuplicateReference(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTransaction("TRX-1-DUP", baseTime)))

	err := repo.Create(ctx, newTransaction("TRX-1-DUP", baseTime))

	assert.ErrorIs(t, err, errs.ErrDuplicateReference)
	assert.ErrorIs(t, err, errs.ErrPersistence)
}

func TestTransactionRepositoryCompareAndSetStatus(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	txn := newTransaction("TRX-1-CAS", baseTime)
	require.NoError(t, repo.Create(ctx, txn))

	later := baseTime.Add(time.Minute)
	swapped, err := repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, entity.StatusProcessing, later)
	require.NoError(t, err)
	assert.True(t, swapped)

	// Stale expectation loses
	swapped, err = repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, entity.StatusFailed, later)
	require.NoError(t, err)
	assert.False(t, swapped)

	stored, err := repo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, stored.Status)
	assert.True(t, stored.UpdatedAt.Equal(later))
	assert.True(t, stored.CreatedAt.Equal(baseTime))

	// Unknown id is not an error, just no swap
	swapped, err = repo.CompareAndSetStatus(ctx, 999, entity.StatusPending, entity.StatusSuccess, later)
	require.NoError(t, err)
	assert.False(t, swapped)
}

func TestTransactionRepositoryConcurrentCompareAndSetHasOneWinner(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	txn := newTransaction("TRX-1-RACE", baseTime)
	require.NoError(t, repo.Create(ctx, txn))

	const racers = 16
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			swapped, err := repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, entity.StatusSuccess, baseTime.Add(time.Second))
			assert.NoError(t, err)
			if swapped {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestTransactionRepositoryList(t *testing.T) {
	repo := newTestTransactionRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		txn := newTransaction(fmt.Sprintf("TRX-%d-LIST", i), baseTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, txn))
		if i%2 == 0 {
			_, err := repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, entity.StatusSuccess, txn.CreatedAt)
			require.NoError(t, err)
		}
	}

	t.Run("Newest first with pagination", func(t *testing.T) {
		page, total, err := repo.List(ctx, persistence.ListFilter{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, page, 2)
		assert.Equal(t, "TRX-4-LIST", page[0].MerchantReference)
		assert.Equal(t, "TRX-3-LIST", page[1].MerchantReference)

		last, _, err := repo.List(ctx, persistence.ListFilter{Page: 3, Limit: 2})
		require.NoError(t, err)
		require.Len(t, last, 1)
		assert.Equal(t, "TRX-0-LIST", last[0].MerchantReference)
	})

	t.Run("Status filter", func(t *testing.T) {
		status := entity.StatusSuccess
		page, total, err := repo.List(ctx, persistence.ListFilter{Status: &status, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		for _, txn := range page {
			assert.Equal(t, entity.StatusSuccess, txn.Status)
		}
	})

	t.Run("Page past the end is empty", func(t *testing.T) {
		page, total, err := repo.List(ctx, persistence.ListFilter{Page: 9, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, page)
	})
}
