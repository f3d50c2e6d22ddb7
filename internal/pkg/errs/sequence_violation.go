package errs

import (
	"errors"
	"fmt"
)

// ErrSequenceViolation is the sentinel error for out-of-order station entry.
var ErrSequenceViolation = errors.New("sequence violation")

// SequenceViolationError indicates that a panel requested entry to a station
// without a recorded pass inspection at the preceding station. Out-of-order
// scans are rejected, never silently corrected.
type SequenceViolationError struct {
	Barcode          string
	RequestedStation int
	MissingStation   int
	Cause            error
}

// NewSequenceViolationError creates a SequenceViolationError naming the
// station the panel asked for and the station whose pass inspection is missing.
func NewSequenceViolationError(barcode string, requestedStation int, missingStation int) *SequenceViolationError {
	return &SequenceViolationError{
		Barcode:          barcode,
		RequestedStation: requestedStation,
		MissingStation:   missingStation,
	}
}

// Error formats the error message.
func (e *SequenceViolationError) Error() string {
	msg := fmt.Sprintf("%s: panel %s requested station %d without a pass inspection at station %d",
		ErrSequenceViolation, e.Barcode, e.RequestedStation, e.MissingStation)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel ErrSequenceViolation for errors.Is matching.
func (e *SequenceViolationError) Unwrap() error {
	return ErrSequenceViolation
}
