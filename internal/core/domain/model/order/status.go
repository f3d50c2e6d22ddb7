package order

import (
	"fmt"

	"paneltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Open ──> InProgress ──> Completed
//	  │                         │
//	  └───────(forced)──────────┘
//
// Completed is reversible only through the rollback engine, which restores
// the status recorded before closure. Closing an Open order is reachable
// only through a forced closure; the force flag is retained in the closure
// audit record, not here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status set at planning time, before the first
	// panel is scanned against the order.
	Open

	// InProgress indicates production has started: at least one panel has
	// been scanned against the order.
	InProgress

	// Completed indicates the order has been closed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Open -> InProgress (first panel scanned)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Start() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start production", s))
	}
	return InProgress, nil
}

// Close transitions the status to Completed.
//
// Valid transitions:
//   - Open -> Completed (forced closure before production started)
//   - InProgress -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the status does not allow closing
func (s Status) Close() (Status, error) {
	if s != Open && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to close", s))
	}
	return Completed, nil
}

// Reopen transitions a completed order back to the given prior status.
// Only the rollback engine calls this; prior must be Open or InProgress.
//
// Returns:
//   - (prior, nil) on valid transition
//   - (0, error) if the order is not completed or prior is not an operating status
func (s Status) Reopen(prior Status) (Status, error) {
	if s != Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reopen", s))
	}
	if prior != Open && prior != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid prior status to restore", prior))
	}
	return prior, nil
}
