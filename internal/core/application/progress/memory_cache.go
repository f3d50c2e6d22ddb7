package progress

import (
	"context"
	"sync"

	"paneltrack/internal/core/domain/model/order"
)

// MemoryCache is the default in-process Cache. A Redis-backed cache can be
// swapped in when statistics must be shared across instances.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]order.Statistics
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]order.Statistics)}
}

// Get returns the cached statistics for an order, if present.
func (c *MemoryCache) Get(_ context.Context, orderID string) (order.Statistics, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats, ok := c.entries[orderID]
	return stats, ok, nil
}

// Set stores statistics for an order.
func (c *MemoryCache) Set(_ context.Context, orderID string, stats order.Statistics) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[orderID] = stats
	return nil
}

// Delete drops the entry for an order.
func (c *MemoryCache) Delete(_ context.Context, orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, orderID)
	return nil
}
