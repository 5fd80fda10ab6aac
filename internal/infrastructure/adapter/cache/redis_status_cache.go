package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "topup:status:"

// RedisConfig holds the connection settings of the status cache
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// cachedTransaction is the stored form of a terminal transaction
type cachedTransaction struct {
	ID                uint64    `json:"id"`
	MerchantReference string    `json:"merchant_transaction_id"`
	TotalDiamond      int64     `json:"total_diamond"`
	TotalAmount       int64     `json:"total_amount"`
	ContactReference  string    `json:"no_wa"`
	TargetID          string    `json:"target_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RedisStatusCache stores terminal transactions in Redis
type RedisStatusCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewRedisStatusCache creates a status cache. A zero TTL keeps entries forever.
func NewRedisStatusCache(client redis.Cmdable, prefix string, ttl time.Duration, logger coreport.Logger) *RedisStatusCache {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStatusCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisStatusCache) key(reference string) string {
	return c.prefix + reference
}

// Get returns the cached transaction and whether it was present
func (c *RedisStatusCache) Get(ctx context.Context, reference string) (*entity.Transaction, bool, error) {
	raw, err := c.client.Get(ctx, c.key(reference)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read status cache: %w", err)
	}

	var cached cachedTransaction
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.Warn("Dropping unreadable status cache entry", map[string]any{
			"merchant_reference": reference,
			"error":              err,
		})
		return nil, false, nil
	}

	return &entity.Transaction{
		ID:                cached.ID,
		MerchantReference: cached.MerchantReference,
		TotalDiamond:      cached.TotalDiamond,
		TotalAmount:       cached.TotalAmount,
		ContactReference:  cached.ContactReference,
		TargetID:          cached.TargetID,
		Status:            entity.Status(cached.Status),
		CreatedAt:         cached.CreatedAt,
		UpdatedAt:         cached.UpdatedAt,
	}, true, nil
}

// Put stores a terminal transaction; other statuses are ignored
func (c *RedisStatusCache) Put(ctx context.Context, transaction *entity.Transaction) error {
	if transaction == nil || !transaction.Status.IsTerminal() {
		return nil
	}

	data, err := encode(transaction)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.key(transaction.MerchantReference), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("write status cache: %w", err)
	}
	return nil
}

func encode(transaction *entity.Transaction) ([]byte, error) {
	data, err := json.Marshal(cachedTransaction{
		ID:                transaction.ID,
		MerchantReference: transaction.MerchantReference,
		TotalDiamond:      transaction.TotalDiamond,
		TotalAmount:       transaction.TotalAmount,
		ContactReference:  transaction.ContactReference,
		TargetID:          transaction.TargetID,
		Status:            string(transaction.Status),
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode status cache entry: %w", err)
	}
	return data, nil
}

var _ cache.StatusCache = (*RedisStatusCache)(nil)
