package panel

import (
	"fmt"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/errs"
)

// InspectionResult is the outcome of a station inspection.
type InspectionResult int

const (
	// ResultUnknown represents an invalid or undefined result.
	ResultUnknown InspectionResult = iota

	// ResultPass lets the panel advance to the next station.
	ResultPass

	// ResultFail routes the panel to Failed. Notes are mandatory.
	ResultFail

	// ResultConditional routes the panel to Quarantined unless an
	// authorized override forces a pass.
	ResultConditional
)

func getResultStrings() map[InspectionResult]string {
	return map[InspectionResult]string{
		ResultUnknown:     "Unknown",
		ResultPass:        "Pass",
		ResultFail:        "Fail",
		ResultConditional: "Conditional",
	}
}

// Validate checks if the InspectionResult value is valid.
func (r InspectionResult) Validate() error {
	switch r {
	case ResultPass, ResultFail, ResultConditional:
		return nil
	case ResultUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("result",
			fmt.Errorf("%d is not a valid inspection result", int(r)))
	}
}

// String returns the human-readable name of the result.
func (r InspectionResult) String() string {
	if s, ok := getResultStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// ErrInspectionIsNotConstructed is returned when an Inspection instance was
// not created through the NewInspection factory method.
var ErrInspectionIsNotConstructed = errs.NewValueIsRequiredError(
	"inspection must be created via NewInspection constructor")

// Inspection is one recorded station inspection of a panel. Inspections are
// append-only: once recorded they are never updated or deleted.
type Inspection struct {
	id             kernel.UUID
	panelID        kernel.UUID
	stationOrdinal int
	inspectorID    kernel.UUID
	result         InspectionResult
	notes          string
	recordedAt     time.Time

	isConstructed bool
}

// NewInspection creates a validated inspection record. Notes are required
// when the result is fail so the failure reason is never lost.
func NewInspection(
	id kernel.UUID,
	panelID kernel.UUID,
	stationOrdinal int,
	inspectorID kernel.UUID,
	result InspectionResult,
	notes string,
	recordedAt time.Time,
) (*Inspection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := panelID.Validate(); err != nil {
		return nil, err
	}
	if stationOrdinal <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stationOrdinal",
			fmt.Errorf("%d is not greater than 0", stationOrdinal))
	}
	if err := inspectorID.Validate(); err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	if result == ResultFail && notes == "" {
		return nil, errs.NewValueIsRequiredError("notes are required for a fail inspection")
	}
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	return &Inspection{
		id:             id,
		panelID:        panelID,
		stationOrdinal: stationOrdinal,
		inspectorID:    inspectorID,
		result:         result,
		notes:          notes,
		recordedAt:     recordedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Inspection was created through NewInspection.
func (i *Inspection) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInspectionIsNotConstructed
	}
	return nil
}

// ID returns the inspection's unique identifier.
func (i *Inspection) ID() kernel.UUID {
	return i.id
}

// PanelID returns the inspected panel's identifier.
func (i *Inspection) PanelID() kernel.UUID {
	return i.panelID
}

// StationOrdinal returns the 1-based ordinal of the inspected station.
func (i *Inspection) StationOrdinal() int {
	return i.stationOrdinal
}

// InspectorID returns the identifier of the inspector who recorded the result.
func (i *Inspection) InspectorID() kernel.UUID {
	return i.inspectorID
}

// Result returns the recorded inspection result.
func (i *Inspection) Result() InspectionResult {
	return i.result
}

// Notes returns the free-text notes; never empty for fail results.
func (i *Inspection) Notes() string {
	return i.notes
}

// RecordedAt returns the time the inspection was recorded.
func (i *Inspection) RecordedAt() time.Time {
	return i.recordedAt
}
