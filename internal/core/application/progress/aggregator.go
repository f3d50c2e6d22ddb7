package progress

import (
	"context"
	"errors"

	"paneltrack/internal/core/domain/model/order"
)

// ErrCacheIsRequired is returned when an Aggregator is constructed without
// a cache.
var ErrCacheIsRequired = errors.New("cache is required")

// Cache stores computed statistics keyed by order id. Implementations must
// be safe for concurrent use. A lookup miss is (zero, false, nil).
type Cache interface {
	Get(ctx context.Context, orderID string) (order.Statistics, bool, error)
	Set(ctx context.Context, orderID string, stats order.Statistics) error
	Delete(ctx context.Context, orderID string) error
}

// Aggregator serves cached statistics to read paths. Writers invalidate
// synchronously on every panel-state or order-status change, so a cached
// entry is only ever stale by the duration of an in-flight request.
type Aggregator struct {
	cache Cache
}

// NewAggregator creates an Aggregator backed by the given cache.
func NewAggregator(cache Cache) (*Aggregator, error) {
	if cache == nil {
		return nil, ErrCacheIsRequired
	}
	return &Aggregator{cache: cache}, nil
}

// Lookup returns the cached statistics for an order. A cache failure
// degrades to a miss so read paths stay available.
func (a *Aggregator) Lookup(ctx context.Context, orderID string) (order.Statistics, bool) {
	stats, ok, err := a.cache.Get(ctx, orderID)
	if err != nil || !ok {
		return order.Statistics{}, false
	}
	return stats, true
}

// Store caches freshly computed statistics.
func (a *Aggregator) Store(ctx context.Context, stats order.Statistics) error {
	return a.cache.Set(ctx, stats.OrderID, stats)
}

// Invalidate drops the cached entry for an order.
func (a *Aggregator) Invalidate(ctx context.Context, orderID string) error {
	return a.cache.Delete(ctx, orderID)
}
