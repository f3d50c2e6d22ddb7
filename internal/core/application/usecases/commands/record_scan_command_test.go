package commands_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordScanCommand(t *testing.T) {
	now := time.Now()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewRecordScanCommand(kernel.NewUUID(), "SPLM-L3-000042", kernel.NewUUID(), now)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "SPLM-L3-000042", cmd.Barcode().String())
		assert.Equal(t, 3, cmd.Barcode().Line())
	})

	t.Run("rejects a malformed barcode", func(t *testing.T) {
		for _, raw := range []string{"", "SPXM-L3-000042", "SPLM-L0-000042", "SPLM-L3-42", "splm-l3-000042"} {
			_, err := commands.NewRecordScanCommand(kernel.NewUUID(), raw, kernel.NewUUID(), now)
			require.Error(t, err, raw)
		}
	})

	t.Run("rejects missing ids and time", func(t *testing.T) {
		_, err := commands.NewRecordScanCommand(kernel.UUID{}, "SPLM-L3-000042", kernel.NewUUID(), now)
		require.Error(t, err)

		_, err = commands.NewRecordScanCommand(kernel.NewUUID(), "SPLM-L3-000042", kernel.UUID{}, now)
		require.Error(t, err)

		_, err = commands.NewRecordScanCommand(kernel.NewUUID(), "SPLM-L3-000042", kernel.NewUUID(), time.Time{})
		require.ErrorIs(t, err, commands.ErrScannedAtIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RecordScanCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRecordScanCommandIsNotConstructed)
	})
}
