package commands

import (
	"errors"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrRollbackClosureCommandIsNotConstructed = errors.New(
		"RollbackClosureCommand must be created via NewRollbackClosureCommand constructor",
	)
	ErrRollbackReasonIsRequired = errors.New("rollback reason is required")
)

// RollbackClosureCommand reverses the most recent closure of a completed
// order. A non-empty reason is mandatory; the reason and the actor end up
// in the compensating audit record.
type RollbackClosureCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRollbackClosureCommand creates a command to roll back a closure.
func NewRollbackClosureCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	reason string,
) (RollbackClosureCommand, error) {
	cmd := RollbackClosureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return RollbackClosureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RollbackClosureCommand) Validate() error {
	return c.guard.Validate(ErrRollbackClosureCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reopen.
func (c RollbackClosureCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns who requested the rollback.
func (c RollbackClosureCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the mandatory rollback reason.
func (c RollbackClosureCommand) Reason() string {
	return c.reason
}

func (c *RollbackClosureCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RollbackClosureCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RollbackClosureCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRollbackReasonIsRequired
	}

	c.reason = reason
	return nil
}
