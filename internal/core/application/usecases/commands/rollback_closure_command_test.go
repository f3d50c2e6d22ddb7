package commands_test

import (
	"testing"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewRollbackClosureCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewRollbackClosureCommand(kernel.NewUUID(), kernel.NewUUID(), "defect found")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		_, err := commands.NewRollbackClosureCommand(kernel.NewUUID(), kernel.NewUUID(), "")
		require.ErrorIs(t, err, commands.ErrRollbackReasonIsRequired)
	})

	t.Run("rejects missing ids", func(t *testing.T) {
		_, err := commands.NewRollbackClosureCommand(kernel.UUID{}, kernel.NewUUID(), "defect found")
		require.Error(t, err)

		_, err = commands.NewRollbackClosureCommand(kernel.NewUUID(), kernel.UUID{}, "defect found")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RollbackClosureCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRollbackClosureCommandIsNotConstructed)
	})
}
