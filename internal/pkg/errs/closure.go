package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order closure lifecycle. Handlers and the HTTP
// adapter classify closure failures with errors.Is against these values.
var (
	ErrNotReady               = errors.New("order is not ready for closure")
	ErrAlreadyClosed          = errors.New("order is already closed")
	ErrNotCompleted           = errors.New("order is not completed")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// NotReadyError indicates that closure readiness rules are unmet and the
// closure was not forced. It carries the blockers so callers can surface
// exactly which rules failed; no state is mutated when it is returned.
type NotReadyError struct {
	OrderID             string
	ReadinessPercentage float64
	Blockers            []string
}

// NewNotReadyError creates a NotReadyError carrying the readiness score and
// the stable-ordered blocker descriptions from the assessment.
func NewNotReadyError(orderID string, readinessPercentage float64, blockers []string) *NotReadyError {
	return &NotReadyError{
		OrderID:             orderID,
		ReadinessPercentage: readinessPercentage,
		Blockers:            blockers,
	}
}

// Error formats the error message including every blocker.
func (e *NotReadyError) Error() string {
	return fmt.Sprintf("%s: %s (readiness %.1f%%, blockers: %s)",
		ErrNotReady, e.OrderID, e.ReadinessPercentage, strings.Join(e.Blockers, "; "))
}

// Unwrap returns the sentinel ErrNotReady for errors.Is matching.
func (e *NotReadyError) Unwrap() error {
	return ErrNotReady
}

// AlreadyClosedError indicates that a closure was requested for an order
// that is already in completed status. Closure is idempotent in the sense
// that re-invocation never produces a second closure.
type AlreadyClosedError struct {
	OrderID string
}

// NewAlreadyClosedError creates an AlreadyClosedError.
func NewAlreadyClosedError(orderID string) *AlreadyClosedError {
	return &AlreadyClosedError{OrderID: orderID}
}

// Error formats the error message.
func (e *AlreadyClosedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyClosed, e.OrderID)
}

// Unwrap returns the sentinel ErrAlreadyClosed for errors.Is matching.
func (e *AlreadyClosedError) Unwrap() error {
	return ErrAlreadyClosed
}

// NotCompletedError indicates that a rollback was requested for an order
// that is not currently in completed status.
type NotCompletedError struct {
	OrderID string
	Status  string
}

// NewNotCompletedError creates a NotCompletedError carrying the order's
// actual status at the time of the request.
func NewNotCompletedError(orderID string, status string) *NotCompletedError {
	return &NotCompletedError{
		OrderID: orderID,
		Status:  status,
	}
}

// Error formats the error message.
func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("%s: %s (status: %s)", ErrNotCompleted, e.OrderID, e.Status)
}

// Unwrap returns the sentinel ErrNotCompleted for errors.Is matching.
func (e *NotCompletedError) Unwrap() error {
	return ErrNotCompleted
}

// ConcurrentModificationError indicates that an order status transition lost
// an optimistic-lock race: another transaction committed a status change
// between this transaction's read and its guarded update.
type ConcurrentModificationError struct {
	OrderID string
}

// NewConcurrentModificationError creates a ConcurrentModificationError.
func NewConcurrentModificationError(orderID string) *ConcurrentModificationError {
	return &ConcurrentModificationError{OrderID: orderID}
}

// Error formats the error message.
func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConcurrentModification, e.OrderID)
}

// Unwrap returns the sentinel ErrConcurrentModification for errors.Is matching.
func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
