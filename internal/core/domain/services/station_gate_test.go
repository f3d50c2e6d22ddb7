package services_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/station"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinePanel(t *testing.T) *panel.Panel {
	t.Helper()
	barcode, err := kernel.NewBarcode("SPLM-L3-000042")
	require.NoError(t, err)
	p, err := panel.NewPanel(kernel.NewUUID(), barcode, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, p.MarkValidated(time.Now()))
	return p
}

func lineSequence(t *testing.T) station.Sequence {
	t.Helper()
	seq, err := station.DefaultSequence(3)
	require.NoError(t, err)
	return seq
}

func TestStationGate_Authorize(t *testing.T) {
	gate := services.NewStationGate()
	now := time.Now()

	t.Run("allows the next station in sequence", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)

		require.NoError(t, gate.Authorize(p, seq, 1))

		require.NoError(t, p.RecordStationPass(1, now))
		require.NoError(t, gate.Authorize(p, seq, 2))
	})

	t.Run("denies skipping ahead and names the missing station", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)
		require.NoError(t, p.RecordStationPass(1, now))

		err := gate.Authorize(p, seq, 4)
		require.ErrorIs(t, err, errs.ErrSequenceViolation)

		var sv *errs.SequenceViolationError
		require.ErrorAs(t, err, &sv)
		assert.Equal(t, 4, sv.RequestedStation)
		assert.Equal(t, 1, sv.MissingStation)
	})

	t.Run("denies re-entering a passed station", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)
		require.NoError(t, p.RecordStationPass(1, now))
		require.NoError(t, p.RecordStationPass(2, now))

		require.ErrorIs(t, gate.Authorize(p, seq, 2), errs.ErrSequenceViolation)
	})

	t.Run("denies stations outside the sequence", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)

		require.ErrorIs(t, gate.Authorize(p, seq, 0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, gate.Authorize(p, seq, seq.Len()+1), errs.ErrValueIsOutOfRange)
	})

	t.Run("denies panels not in a workable state", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)
		require.NoError(t, p.Fail("cracked cell", now))

		require.ErrorIs(t, gate.Authorize(p, seq, 1), errs.ErrValueIsInvalid)
	})

	t.Run("rework re-enters at the configured station", func(t *testing.T) {
		p := newLinePanel(t)
		seq := lineSequence(t)
		require.NoError(t, p.RecordStationPass(1, now))
		require.NoError(t, p.RecordStationPass(2, now))
		require.NoError(t, p.Fail("delamination", now))
		require.NoError(t, p.StartRework(2, now))

		require.NoError(t, gate.Authorize(p, seq, 2))
		require.ErrorIs(t, gate.Authorize(p, seq, 3), errs.ErrSequenceViolation)
	})
}
