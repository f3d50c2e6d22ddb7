package order_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, quantity int) *order.Order {
	t.Helper()
	start := time.Now()
	o, err := order.NewOrder(kernel.NewUUID(), "MO-2026-0142", quantity, start, start.Add(14*24*time.Hour))
	require.NoError(t, err)
	return o
}

func completePanels(t *testing.T, o *order.Order, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, o.RegisterCompletedPanel())
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in open status", func(t *testing.T) {
		o := newTestOrder(t, 10)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, "MO-2026-0142", o.OrderNumber())
		assert.Equal(t, 10, o.TargetQuantity())
		assert.Equal(t, 0, o.CompletedCount())
		assert.Nil(t, o.ActualCompletionDate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		now := time.Now()
		later := now.Add(time.Hour)

		_, err := order.NewOrder(kernel.UUID{}, "MO-1", 10, now, later)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "", 10, now, later)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "MO-1", 0, now, later)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "MO-1", 10, now, now.Add(-time.Hour))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_StartAndRegister(t *testing.T) {
	t.Run("start moves open order to in progress", func(t *testing.T) {
		o := newTestOrder(t, 10)
		require.NoError(t, o.Start())
		assert.Equal(t, order.InProgress, o.Status())

		require.Error(t, o.Start())
	})

	t.Run("completed count never exceeds target", func(t *testing.T) {
		o := newTestOrder(t, 2)
		require.NoError(t, o.Start())
		completePanels(t, o, 2)

		err := o.RegisterCompletedPanel()
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 2, o.CompletedCount())
	})

	t.Run("cannot register on an open order", func(t *testing.T) {
		o := newTestOrder(t, 2)
		require.Error(t, o.RegisterCompletedPanel())
	})
}

func TestOrder_Close(t *testing.T) {
	now := time.Now()

	t.Run("closes when count equals target", func(t *testing.T) {
		o := newTestOrder(t, 2)
		require.NoError(t, o.Start())
		completePanels(t, o, 2)

		require.NoError(t, o.Close(false, now))
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.ActualCompletionDate())
	})

	t.Run("refuses unforced closure below target", func(t *testing.T) {
		o := newTestOrder(t, 10)
		require.NoError(t, o.Start())
		completePanels(t, o, 7)

		err := o.Close(false, now)
		require.Error(t, err)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("forced closure below target succeeds", func(t *testing.T) {
		o := newTestOrder(t, 10)
		require.NoError(t, o.Start())
		completePanels(t, o, 7)

		require.NoError(t, o.Close(true, now))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("closing twice fails with already closed", func(t *testing.T) {
		o := newTestOrder(t, 1)
		require.NoError(t, o.Start())
		completePanels(t, o, 1)
		require.NoError(t, o.Close(false, now))

		err := o.Close(false, now)
		require.ErrorIs(t, err, errs.ErrAlreadyClosed)
	})
}

func TestOrder_Reopen(t *testing.T) {
	now := time.Now()

	t.Run("restores prior status and clears completion date", func(t *testing.T) {
		o := newTestOrder(t, 1)
		require.NoError(t, o.Start())
		completePanels(t, o, 1)
		require.NoError(t, o.Close(false, now))

		require.NoError(t, o.Reopen(order.InProgress))
		assert.Equal(t, order.InProgress, o.Status())
		assert.Nil(t, o.ActualCompletionDate())
	})

	t.Run("fails on a non-completed order", func(t *testing.T) {
		o := newTestOrder(t, 1)
		err := o.Reopen(order.InProgress)
		require.ErrorIs(t, err, errs.ErrNotCompleted)
	})

	t.Run("rejects completed as prior status", func(t *testing.T) {
		o := newTestOrder(t, 1)
		require.NoError(t, o.Start())
		completePanels(t, o, 1)
		require.NoError(t, o.Close(false, now))

		require.Error(t, o.Reopen(order.Completed))
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()
	later := now.Add(24 * time.Hour)

	t.Run("restores a valid order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "MO-2026-0142", order.InProgress, 10, 7, now, later, nil)
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, 7, o.CompletedCount())
	})

	t.Run("rejects count above target", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "MO-2026-0142", order.InProgress, 10, 11, now, later, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "MO-2026-0142", order.Unknown, 10, 5, now, later, nil)
		require.Error(t, err)
	})
}
