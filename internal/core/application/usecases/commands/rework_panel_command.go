package commands

import (
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrReworkPanelCommandIsNotConstructed = errors.New(
		"ReworkPanelCommand must be created via NewReworkPanelCommand constructor",
	)
	ErrReentryOrdinalIsInvalid = errors.New("re-entry station ordinal must be greater than 0")
	ErrReworkAtIsRequired      = errors.New("rework time is required")
)

// ReworkPanelCommand returns a failed or quarantined panel to the line at a
// configurable re-entry station. Station passes from the re-entry point on
// must be earned again.
type ReworkPanelCommand struct { //nolint:recvcheck //using for validation
	panelID        kernel.UUID
	reentryOrdinal int
	reworkAt       time.Time

	guard guard.ConstructorGuard
}

// NewReworkPanelCommand creates a command to send a panel to rework.
func NewReworkPanelCommand(
	panelID kernel.UUID,
	reentryOrdinal int,
	reworkAt time.Time,
) (ReworkPanelCommand, error) {
	cmd := ReworkPanelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPanelID(panelID),
		cmd.setReentryOrdinal(reentryOrdinal),
		cmd.setReworkAt(reworkAt),
	); err != nil {
		return ReworkPanelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReworkPanelCommand) Validate() error {
	return c.guard.Validate(ErrReworkPanelCommandIsNotConstructed)
}

// PanelID returns the identifier of the panel to rework.
func (c ReworkPanelCommand) PanelID() kernel.UUID {
	return c.panelID
}

// ReentryOrdinal returns the station ordinal the panel re-enters at.
func (c ReworkPanelCommand) ReentryOrdinal() int {
	return c.reentryOrdinal
}

// ReworkAt returns the time the rework decision was made.
func (c ReworkPanelCommand) ReworkAt() time.Time {
	return c.reworkAt
}

func (c *ReworkPanelCommand) setPanelID(panelID kernel.UUID) error {
	if err := panelID.Validate(); err != nil {
		return err
	}

	c.panelID = panelID
	return nil
}

func (c *ReworkPanelCommand) setReentryOrdinal(ordinal int) error {
	if ordinal <= 0 {
		return ErrReentryOrdinalIsInvalid
	}

	c.reentryOrdinal = ordinal
	return nil
}

func (c *ReworkPanelCommand) setReworkAt(at time.Time) error {
	if at.IsZero() {
		return ErrReworkAtIsRequired
	}

	c.reworkAt = at
	return nil
}
