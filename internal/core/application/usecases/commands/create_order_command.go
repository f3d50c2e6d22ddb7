package commands

import (
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired     = errors.New("order number is required")
	ErrTargetQuantityIsInvalid   = errors.New("target quantity must be greater than 0")
	ErrStartDateIsRequired       = errors.New("start date is required")
	ErrExpectedDateIsBeforeStart = errors.New("expected completion date must not precede the start date")
)

// CreateOrderCommand represents a request to register a manufacturing order
// at planning time. Panels are scanned against the order later on the line.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID                kernel.UUID
	orderNumber            string
	targetQuantity         int
	startDate              time.Time
	expectedCompletionDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a manufacturing order.
// Validates identity, order number, target quantity and the date window.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	targetQuantity int,
	startDate time.Time,
	expectedCompletionDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setTargetQuantity(targetQuantity),
		cmd.setDates(startDate, expectedCompletionDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing manufacturing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// TargetQuantity returns the number of panels the order must produce.
func (c CreateOrderCommand) TargetQuantity() int {
	return c.targetQuantity
}

// StartDate returns the planned production start date.
func (c CreateOrderCommand) StartDate() time.Time {
	return c.startDate
}

// ExpectedCompletionDate returns the planned completion date.
func (c CreateOrderCommand) ExpectedCompletionDate() time.Time {
	return c.expectedCompletionDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setTargetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrTargetQuantityIsInvalid
	}

	c.targetQuantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDates(start time.Time, expected time.Time) error {
	if start.IsZero() {
		return ErrStartDateIsRequired
	}
	if expected.Before(start) {
		return ErrExpectedDateIsBeforeStart
	}

	c.startDate = start
	c.expectedCompletionDate = expected
	return nil
}
