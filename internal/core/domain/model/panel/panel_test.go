package panel_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalStations = 7

func testBarcode(t *testing.T) kernel.Barcode {
	t.Helper()
	bc, err := kernel.NewBarcode("SPLM-L3-000042")
	require.NoError(t, err)
	return bc
}

func newValidatedPanel(t *testing.T, at time.Time) *panel.Panel {
	t.Helper()
	p, err := panel.NewPanel(kernel.NewUUID(), testBarcode(t), kernel.NewUUID(), at)
	require.NoError(t, err)
	require.NoError(t, p.MarkValidated(at))
	return p
}

func passStations(t *testing.T, p *panel.Panel, from, to int, base time.Time) {
	t.Helper()
	for ordinal := from; ordinal <= to; ordinal++ {
		require.NoError(t, p.RecordStationPass(ordinal, base.Add(time.Duration(ordinal)*time.Minute)))
	}
}

func TestNewPanel(t *testing.T) {
	now := time.Now()

	t.Run("creates panel in scanned state", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		p, err := panel.NewPanel(id, testBarcode(t), orderID, now)
		require.NoError(t, err)
		require.NoError(t, p.Validate())

		assert.Equal(t, panel.Scanned, p.State())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, 0, p.PassedStations())
		assert.Equal(t, 1, p.NextStation())
		assert.Nil(t, p.Measurements())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := panel.NewPanel(kernel.UUID{}, testBarcode(t), kernel.NewUUID(), now)
		require.Error(t, err)

		_, err = panel.NewPanel(kernel.NewUUID(), kernel.Barcode{}, kernel.NewUUID(), now)
		require.Error(t, err)

		_, err = panel.NewPanel(kernel.NewUUID(), testBarcode(t), kernel.NewUUID(), time.Time{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p panel.Panel
		require.ErrorIs(t, p.Validate(), panel.ErrPanelIsNotConstructed)
	})
}

func TestPanel_RecordStationPass(t *testing.T) {
	now := time.Now()

	t.Run("stations pass in order", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 3, now)

		assert.Equal(t, panel.InProduction, p.State())
		assert.Equal(t, 3, p.PassedStations())
		assert.Equal(t, 4, p.NextStation())
	})

	t.Run("skipping a station is a sequence violation", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 2, now)

		err := p.RecordStationPass(4, now.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrSequenceViolation)
		assert.Equal(t, 2, p.PassedStations())
	})

	t.Run("repeating a passed station is a sequence violation", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 2, now)

		err := p.RecordStationPass(2, now.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrSequenceViolation)
	})

	t.Run("pass timestamps must be non-decreasing", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		require.NoError(t, p.RecordStationPass(1, now))

		err := p.RecordStationPass(2, now.Add(-time.Minute))
		require.Error(t, err)
		assert.Equal(t, 1, p.PassedStations())
	})

	t.Run("scanned panel cannot enter production", func(t *testing.T) {
		p, err := panel.NewPanel(kernel.NewUUID(), testBarcode(t), kernel.NewUUID(), now)
		require.NoError(t, err)

		require.Error(t, p.RecordStationPass(1, now))
	})
}

func TestPanel_Complete(t *testing.T) {
	now := time.Now()
	m, err := panel.NewMeasurements(410.5, 48.2, 10.9)
	require.NoError(t, err)

	t.Run("completes after all stations", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, totalStations, now)

		require.NoError(t, p.Complete(m, totalStations, now.Add(time.Hour)))
		assert.Equal(t, panel.Completed, p.State())
		require.NotNil(t, p.Measurements())
		assert.InDelta(t, 410.5, p.Measurements().PowerWatts(), 0.001)
	})

	t.Run("station timestamps imply a gapless prefix", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, totalStations, now)

		passes := p.StationPasses()
		require.Len(t, passes, totalStations)
		for k := 1; k < len(passes); k++ {
			assert.False(t, passes[k].Before(passes[k-1]),
				"station %d timestamp precedes station %d", k+1, k)
		}
	})

	t.Run("refuses completion with missing stations", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, totalStations-1, now)

		require.Error(t, p.Complete(m, totalStations, now))
		assert.Equal(t, panel.InProduction, p.State())
	})

	t.Run("refuses unconstructed measurements", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, totalStations, now)

		require.Error(t, p.Complete(panel.Measurements{}, totalStations, now))
	})
}

func TestPanel_FailAndRework(t *testing.T) {
	now := time.Now()

	t.Run("fail requires a reason", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 3, now)

		require.Error(t, p.Fail("", now))
		require.NoError(t, p.Fail("cracked cell", now))
		assert.Equal(t, panel.Failed, p.State())
		assert.Equal(t, "cracked cell", p.HoldReason())
	})

	t.Run("rework re-enters at the chosen station", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 4, now)
		require.NoError(t, p.Fail("delamination", now))

		require.NoError(t, p.StartRework(3, now))
		assert.Equal(t, panel.Rework, p.State())
		assert.Equal(t, 2, p.PassedStations())
		assert.Equal(t, 3, p.NextStation())

		// Earlier passes survive, the discarded ones must be earned again.
		require.NoError(t, p.RecordStationPass(3, now.Add(time.Hour)))
		assert.Equal(t, panel.InProduction, p.State())
	})

	t.Run("rework re-entry must be within the earned prefix", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 2, now)
		require.NoError(t, p.Fail("broken glass", now))

		require.Error(t, p.StartRework(0, now))
		require.Error(t, p.StartRework(4, now))
	})

	t.Run("rework from quarantine", func(t *testing.T) {
		p := newValidatedPanel(t, now)
		passStations(t, p, 1, 2, now)
		require.NoError(t, p.Quarantine("borderline EL image", now))
		assert.Equal(t, panel.Quarantined, p.State())

		require.NoError(t, p.StartRework(1, now))
		assert.Equal(t, 0, p.PassedStations())
	})
}

func TestRestorePanel(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	bc := testBarcode(t)
	m, err := panel.NewMeasurements(400, 48, 10)
	require.NoError(t, err)

	t.Run("restores a completed panel", func(t *testing.T) {
		passes := make([]time.Time, totalStations)
		for i := range passes {
			passes[i] = now.Add(time.Duration(i) * time.Minute)
		}

		p, restoreErr := panel.RestorePanel(
			kernel.NewUUID(), bc, kernel.NewUUID(),
			panel.Completed, passes, &m, "", now, now.Add(time.Hour),
		)
		require.NoError(t, restoreErr)
		assert.Equal(t, panel.Completed, p.State())
		assert.Equal(t, totalStations, p.PassedStations())
	})

	t.Run("rejects decreasing timestamps", func(t *testing.T) {
		passes := []time.Time{now, now.Add(-time.Minute)}
		_, restoreErr := panel.RestorePanel(
			kernel.NewUUID(), bc, kernel.NewUUID(),
			panel.InProduction, passes, nil, "", now, now,
		)
		require.Error(t, restoreErr)
	})

	t.Run("rejects completed panel without measurements", func(t *testing.T) {
		passes := make([]time.Time, totalStations)
		for i := range passes {
			passes[i] = now.Add(time.Duration(i) * time.Minute)
		}

		_, restoreErr := panel.RestorePanel(
			kernel.NewUUID(), bc, kernel.NewUUID(),
			panel.Completed, passes, nil, "", now, now,
		)
		require.Error(t, restoreErr)
	})

	t.Run("rejects completed panel with missing passes", func(t *testing.T) {
		passes := make([]time.Time, totalStations-2)
		for i := range passes {
			passes[i] = now.Add(time.Duration(i) * time.Minute)
		}

		_, restoreErr := panel.RestorePanel(
			kernel.NewUUID(), bc, kernel.NewUUID(),
			panel.Completed, passes, &m, "", now, now,
		)
		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})

	t.Run("rejects more passes than stations", func(t *testing.T) {
		passes := make([]time.Time, totalStations+1)
		for i := range passes {
			passes[i] = now.Add(time.Duration(i) * time.Minute)
		}

		_, restoreErr := panel.RestorePanel(
			kernel.NewUUID(), bc, kernel.NewUUID(),
			panel.InProduction, passes, nil, "", now, now,
		)
		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})
}

func TestNewInspection(t *testing.T) {
	now := time.Now()

	t.Run("valid pass inspection", func(t *testing.T) {
		ins, err := panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 3, kernel.NewUUID(),
			panel.ResultPass, "", now,
		)
		require.NoError(t, err)
		require.NoError(t, ins.Validate())
		assert.Equal(t, 3, ins.StationOrdinal())
		assert.Equal(t, panel.ResultPass, ins.Result())
	})

	t.Run("fail inspection requires notes", func(t *testing.T) {
		_, err := panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 3, kernel.NewUUID(),
			panel.ResultFail, "", now,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		ins, err := panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 3, kernel.NewUUID(),
			panel.ResultFail, "microcracks near busbar", now,
		)
		require.NoError(t, err)
		assert.Equal(t, "microcracks near busbar", ins.Notes())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		_, err := panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 0, kernel.NewUUID(),
			panel.ResultPass, "", now,
		)
		require.Error(t, err)

		_, err = panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 1, kernel.NewUUID(),
			panel.ResultUnknown, "", now,
		)
		require.Error(t, err)

		_, err = panel.NewInspection(
			kernel.NewUUID(), kernel.NewUUID(), 1, kernel.NewUUID(),
			panel.ResultPass, "", time.Time{},
		)
		require.Error(t, err)
	})
}

func TestNewMeasurements(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := panel.NewMeasurements(405.2, 49.1, 10.8)
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.InDelta(t, 49.1, m.VoltageVolts(), 0.001)
		assert.InDelta(t, 10.8, m.CurrentAmps(), 0.001)
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		_, err := panel.NewMeasurements(0, 49, 10)
		require.Error(t, err)
		_, err = panel.NewMeasurements(400, -1, 10)
		require.Error(t, err)
		_, err = panel.NewMeasurements(400, 49, 0)
		require.Error(t, err)
	})
}
