package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) (order.Statistics, bool, error) {
	return order.Statistics{}, false, errors.New("cache unavailable")
}
func (failingCache) Set(context.Context, string, order.Statistics) error {
	return errors.New("cache unavailable")
}
func (failingCache) Delete(context.Context, string) error {
	return errors.New("cache unavailable")
}

func TestNewAggregator(t *testing.T) {
	_, err := progress.NewAggregator(nil)
	require.ErrorIs(t, err, progress.ErrCacheIsRequired)
}

func TestAggregator(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID().String()
	stats := order.Statistics{OrderID: orderID, OrderNumber: "MO-2026-0007", ComputedAt: time.Now()}

	t.Run("store then lookup", func(t *testing.T) {
		agg, err := progress.NewAggregator(progress.NewMemoryCache())
		require.NoError(t, err)

		_, ok := agg.Lookup(ctx, orderID)
		assert.False(t, ok)

		require.NoError(t, agg.Store(ctx, stats))

		got, ok := agg.Lookup(ctx, orderID)
		require.True(t, ok)
		assert.Equal(t, stats, got)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		agg, err := progress.NewAggregator(progress.NewMemoryCache())
		require.NoError(t, err)
		require.NoError(t, agg.Store(ctx, stats))

		require.NoError(t, agg.Invalidate(ctx, orderID))

		_, ok := agg.Lookup(ctx, orderID)
		assert.False(t, ok)
	})

	t.Run("cache failure degrades to a miss", func(t *testing.T) {
		agg, err := progress.NewAggregator(failingCache{})
		require.NoError(t, err)

		_, ok := agg.Lookup(ctx, orderID)
		assert.False(t, ok)
	})
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := progress.NewMemoryCache()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	stats := order.Statistics{OrderID: "o-1", ComputedAt: time.Now()}
	require.NoError(t, cache.Set(ctx, "o-1", stats))

	got, ok, err := cache.Get(ctx, "o-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stats, got)

	require.NoError(t, cache.Delete(ctx, "o-1"))
	_, ok, err = cache.Get(ctx, "o-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
