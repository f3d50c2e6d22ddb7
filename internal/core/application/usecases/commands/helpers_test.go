package commands_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"

	"github.com/stretchr/testify/require"
)

func newOpenOrder(t *testing.T, target int) *order.Order {
	t.Helper()
	start := time.Now().Add(-24 * time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), "MO-2026-0042", target, start, start.Add(14*24*time.Hour))
	require.NoError(t, err)
	return o
}

func newInProgressOrder(t *testing.T, target, completed int) *order.Order {
	t.Helper()
	o := newOpenOrder(t, target)
	require.NoError(t, o.Start())
	for i := 0; i < completed; i++ {
		require.NoError(t, o.RegisterCompletedPanel())
	}
	return o
}

func newCompletedOrder(t *testing.T, target int) *order.Order {
	t.Helper()
	o := newInProgressOrder(t, target, target)
	require.NoError(t, o.Close(false, time.Now()))
	return o
}

func newValidatedPanel(t *testing.T, orderID kernel.UUID) *panel.Panel {
	t.Helper()
	barcode, err := kernel.NewBarcode("SPLM-L3-000042")
	require.NoError(t, err)
	p, err := panel.NewPanel(kernel.NewUUID(), barcode, orderID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, p.MarkValidated(time.Now().Add(-time.Hour)))
	return p
}

func panelAtStation(t *testing.T, orderID kernel.UUID, passed int) *panel.Panel {
	t.Helper()
	p := newValidatedPanel(t, orderID)
	at := time.Now().Add(-time.Hour)
	for ordinal := 1; ordinal <= passed; ordinal++ {
		require.NoError(t, p.RecordStationPass(ordinal, at.Add(time.Duration(ordinal)*time.Minute)))
	}
	return p
}

func flashMeasurements(t *testing.T) panel.Measurements {
	t.Helper()
	m, err := panel.NewMeasurements(410.2, 41.5, 9.88)
	require.NoError(t, err)
	return m
}
