package commands

import (
	"errors"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
	ErrClosureKindIsInvalid = errors.New("closure kind must be automatic-close or manual-close")
)

// ClosureOptions is the typed option set of the closure executor. The zero
// value is the default for every option.
//
//   - Force closes the order even when readiness checks fail; the flag is
//     retained in the audit record
//   - SkipValidation skips the readiness assessment entirely
//   - GenerateReport invokes the report collaborator with the final
//     statistics snapshot after the closure commits
//   - FinalizePallets finalizes the order's pallets inside the closure
//     transaction
type ClosureOptions struct {
	Force           bool
	SkipValidation  bool
	GenerateReport  bool
	FinalizePallets bool
}

// CloseOrderCommand represents a request to close a manufacturing order,
// either by an operator (manual-close) or by the scan job (automatic-close).
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	kind    audit.Kind
	reason  string
	options ClosureOptions

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a closure command. The kind must be one of
// the two closure kinds; rollbacks have their own command.
func NewCloseOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	kind audit.Kind,
	reason string,
	options ClosureOptions,
) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setKind(kind),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	cmd.reason = reason
	cmd.options = options
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to close.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns who requested the closure.
func (c CloseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Kind returns the audit classification of the closure.
func (c CloseOrderCommand) Kind() audit.Kind {
	return c.kind
}

// Reason returns the optional operator-supplied reason.
func (c CloseOrderCommand) Reason() string {
	return c.reason
}

// Options returns the closure options.
func (c CloseOrderCommand) Options() ClosureOptions {
	return c.options
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CloseOrderCommand) setKind(kind audit.Kind) error {
	if kind != audit.KindAutomaticClose && kind != audit.KindManualClose {
		return ErrClosureKindIsInvalid
	}

	c.kind = kind
	return nil
}
