package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const globalBalanceKey = "report:global-balance"

// BalanceCache is a short-TTL cache in front of the unscoped global-balance
// aggregation. A miss or a cache failure always falls through to the store.
type BalanceCache interface {
	Get(ctx context.Context) (*GlobalBalance, bool)
	Set(ctx context.Context, balance *GlobalBalance) error
}

type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ BalanceCache = (*RedisBalanceCache)(nil)

func NewRedisBalanceCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisBalanceCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisBalanceCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "RedisBalanceCache"),
	}
}

func (c *RedisBalanceCache) Get(ctx context.Context) (*GlobalBalance, bool) {
	val, err := c.client.Get(ctx, globalBalanceKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read global balance from cache", "error", err)
		}
		return nil, false
	}

	var balance GlobalBalance
	if err := json.Unmarshal([]byte(val), &balance); err != nil {
		c.logger.Warn("Failed to decode cached global balance", "error", err)
		return nil, false
	}
	return &balance, true
}

func (c *RedisBalanceCache) Set(ctx context.Context, balance *GlobalBalance) error {
	body, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, globalBalanceKey, body, c.ttl).Err()
}
