package order

import (
	"errors"
	"fmt"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a manufacturing order: a batch of panels with a target
// quantity. It is the aggregate root that manages the order lifecycle from
// planning through production to closure and, via rollback, back.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Target quantity must be positive
//   - Completed-panel count never exceeds the target quantity
//   - Status transitions follow defined business rules; completed status
//     with a count below target is only reachable through a forced closure
//     (the force flag is retained in the audit record)
//
// The Order struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-facing order number, e.g. "MO-2026-0142"
	orderNumber string

	// status represents the current state in the order lifecycle
	status Status

	// targetQuantity is the number of panels the order must produce
	targetQuantity int

	// completedCount is the number of panels completed so far
	completedCount int

	// startDate is when production was planned to start
	startDate time.Time

	// expectedCompletionDate is the planned completion date
	expectedCompletionDate time.Time

	// actualCompletionDate is set on closure, cleared on rollback
	actualCompletionDate *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Open status with validation. This is the
// only way to create a valid Order apart from RestoreOrder.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	targetQuantity int,
	startDate time.Time,
	expectedCompletionDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setTargetQuantity(targetQuantity),
		o.setDates(startDate, expectedCompletionDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, re-validating the
// count and status invariants rather than trusting the stored row.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	targetQuantity int,
	completedCount int,
	startDate time.Time,
	expectedCompletionDate time.Time,
	actualCompletionDate *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, targetQuantity, startDate, expectedCompletionDate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if completedCount < 0 || completedCount > targetQuantity {
		return nil, errs.NewValueIsOutOfRangeError("completedCount", completedCount, 0, targetQuantity)
	}

	o.status = status
	o.completedCount = completedCount
	o.actualCompletionDate = actualCompletionDate
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TargetQuantity returns the number of panels the order must produce.
func (o *Order) TargetQuantity() int {
	return o.targetQuantity
}

// CompletedCount returns the number of panels completed so far.
func (o *Order) CompletedCount() int {
	return o.completedCount
}

// StartDate returns the planned production start date.
func (o *Order) StartDate() time.Time {
	return o.startDate
}

// ExpectedCompletionDate returns the planned completion date.
func (o *Order) ExpectedCompletionDate() time.Time {
	return o.expectedCompletionDate
}

// ActualCompletionDate returns the closure time, or nil while the order is open.
func (o *Order) ActualCompletionDate() *time.Time {
	return o.actualCompletionDate
}

// Start moves the order to InProgress when the first panel is scanned.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RegisterCompletedPanel increments the completed-panel count.
// The count never exceeds the target quantity.
func (o *Order) RegisterCompletedPanel() error {
	if o.status != InProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to register a completed panel", o.status))
	}
	if o.completedCount >= o.targetQuantity {
		return errs.NewValueIsOutOfRangeError("completedCount", o.completedCount+1, 0, o.targetQuantity)
	}

	o.completedCount++
	return nil
}

// Close transitions the order to Completed.
//
// Business rules:
//   - An already completed order cannot be closed again (AlreadyClosedError)
//   - Without force, the completed count must equal the target quantity
//
// The readiness rule set is evaluated by the closure executor before this
// method is reached; Close re-enforces only the hard count invariant.
func (o *Order) Close(force bool, at time.Time) error {
	if o.status == Completed {
		return errs.NewAlreadyClosedError(o.id.String())
	}
	if !force && o.completedCount != o.targetQuantity {
		return errs.NewValueIsInvalidErrorWithCause("completedCount",
			fmt.Errorf("%d of %d panels completed and closure was not forced",
				o.completedCount, o.targetQuantity))
	}

	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.actualCompletionDate = &at
	return nil
}

// Reopen restores a completed order to its pre-closure status.
// Only the rollback engine calls this.
func (o *Order) Reopen(prior Status) error {
	if o.status != Completed {
		return errs.NewNotCompletedError(o.id.String(), o.status.String())
	}

	newStatus, err := o.status.Reopen(prior)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.actualCompletionDate = nil
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the order number.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

// setTargetQuantity validates and sets the target quantity.
// This is a private method used only during construction.
func (o *Order) setTargetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("targetQuantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.targetQuantity = quantity
	return nil
}

// setDates validates and sets the planning dates.
// This is a private method used only during construction.
func (o *Order) setDates(start time.Time, expected time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if expected.IsZero() {
		return errs.NewValueIsRequiredError("expectedCompletionDate")
	}
	if expected.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause("expectedCompletionDate",
			fmt.Errorf("expected completion %s precedes start %s", expected, start))
	}
	o.startDate = start
	o.expectedCompletionDate = expected
	return nil
}
