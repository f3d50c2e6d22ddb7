// Package rediscache provides a Redis-backed implementation of the progress
// statistics cache, for deployments where several instances share one
// dashboard read model. Entries carry a TTL so an instance that crashes
// between a write and its invalidation cannot poison the cache forever.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const (
	progressKeyPrefix = "progress:"
	progressKeyTTL    = 15 * time.Minute
)

// Cache implements the progress cache port on top of go-redis. Statistics
// are stored as JSON under one key per order.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Redis progress cache on an existing client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get retrieves cached statistics for an order. A missing key is a miss,
// not an error.
func (c *Cache) Get(ctx context.Context, orderID string) (order.Statistics, bool, error) {
	raw, err := c.client.Get(ctx, progressKeyPrefix+orderID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return order.Statistics{}, false, nil
		}
		return order.Statistics{}, false, err
	}

	var stats order.Statistics
	if err = json.Unmarshal(raw, &stats); err != nil {
		return order.Statistics{}, false, err
	}

	return stats, true, nil
}

// Set stores statistics for an order, replacing any previous entry.
func (c *Cache) Set(ctx context.Context, orderID string, stats order.Statistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, progressKeyPrefix+orderID, raw, progressKeyTTL).Err()
}

// Delete removes an order's cached statistics. Deleting an absent key is
// not an error.
func (c *Cache) Delete(ctx context.Context, orderID string) error {
	return c.client.Del(ctx, progressKeyPrefix+orderID).Err()
}
