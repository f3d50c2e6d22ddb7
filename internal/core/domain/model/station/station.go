// Package station provides the immutable station reference data for the
// production line: which inspection stations exist, in which order panels
// visit them, and where a reworked panel may re-enter.
package station

import (
	"fmt"

	"paneltrack/internal/pkg/errs"
)

// Station describes one inspection station on a production line.
// Stations are immutable reference data; they are defined once per line
// and never mutated by the workflow.
type Station struct {
	ordinal int
	code    string
	name    string
	line    int
}

// NewStation creates a station. Ordinal must be positive, code and name
// must be non-empty, line must be positive.
func NewStation(ordinal int, code string, name string, line int) (Station, error) {
	if ordinal <= 0 {
		return Station{}, errs.NewValueIsInvalidErrorWithCause("ordinal",
			fmt.Errorf("%d is not greater than 0", ordinal))
	}
	if code == "" {
		return Station{}, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return Station{}, errs.NewValueIsRequiredError("name")
	}
	if line <= 0 {
		return Station{}, errs.NewValueIsInvalidErrorWithCause("line",
			fmt.Errorf("%d is not greater than 0", line))
	}

	return Station{
		ordinal: ordinal,
		code:    code,
		name:    name,
		line:    line,
	}, nil
}

// Ordinal returns the station's 1-based position in the line sequence.
func (s Station) Ordinal() int {
	return s.ordinal
}

// Code returns the short station code, e.g. "FLASH".
func (s Station) Code() string {
	return s.code
}

// Name returns the human-readable station name.
func (s Station) Name() string {
	return s.name
}

// Line returns the production line the station is assigned to.
func (s Station) Line() int {
	return s.line
}

// String implements fmt.Stringer.
func (s Station) String() string {
	return fmt.Sprintf("%d:%s", s.ordinal, s.code)
}
