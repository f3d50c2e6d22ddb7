package queries_test

import (
	"fmt"
	"testing"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"

	"github.com/stretchr/testify/require"
)

const totalStations = 7

func newStartedOrder(t *testing.T, target int) *order.Order {
	t.Helper()
	start := time.Now().Add(-72 * time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), "MO-2026-0311", target, start, start.Add(14*24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.Start())
	return o
}

func newCompletedPanel(t *testing.T, orderID kernel.UUID, seq int, scannedAt time.Time) *panel.Panel {
	t.Helper()
	barcode, err := kernel.NewBarcode(fmt.Sprintf("SPLP-L2-%06d", seq))
	require.NoError(t, err)
	p, err := panel.NewPanel(kernel.NewUUID(), barcode, orderID, scannedAt)
	require.NoError(t, err)
	require.NoError(t, p.MarkValidated(scannedAt))
	for ordinal := 1; ordinal <= totalStations; ordinal++ {
		require.NoError(t, p.RecordStationPass(ordinal, scannedAt.Add(time.Duration(ordinal)*10*time.Minute)))
	}
	m, err := panel.NewMeasurements(402.8, 40.9, 9.85)
	require.NoError(t, err)
	require.NoError(t, p.Complete(m, totalStations, scannedAt.Add(2*time.Hour)))
	return p
}
