package commands_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	now := time.Now()
	later := now.Add(14 * 24 * time.Hour)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "MO-2026-0042", 100, now, later)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "MO-2026-0042", 100, now, later)
		require.Error(t, err)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "", 100, now, later)
		require.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "MO-2026-0042", 0, now, later)
		require.ErrorIs(t, err, commands.ErrTargetQuantityIsInvalid)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "MO-2026-0042", 100, now, now.Add(-time.Hour))
		require.ErrorIs(t, err, commands.ErrExpectedDateIsBeforeStart)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
