package cache

import (
	"context"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
)

// StatusCache holds terminal transactions for the public status poll. Only
// terminal records are stored, so entries never need invalidation.
type StatusCache interface {
	// Get returns the cached transaction and whether it was present
	Get(ctx context.Context, reference string) (*entity.Transaction, bool, error)
	// Put stores a terminal transaction; non-terminal ones are ignored
	Put(ctx context.Context, transaction *entity.Transaction) error
}
