package commands

import (
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrRecordInspectionCommandIsNotConstructed = errors.New(
		"RecordInspectionCommand must be created via NewRecordInspectionCommand constructor",
	)
	ErrStationOrdinalIsInvalid = errors.New("station ordinal must be greater than 0")
	ErrRecordedAtIsRequired    = errors.New("inspection time is required")
	ErrNotesAreRequired        = errors.New("notes are required for a fail inspection")
)

// RecordInspectionCommand represents one station inspection result for a
// panel. A pass advances the panel through the station gate; a fail routes
// it to Failed; a conditional routes it to Quarantined unless the override
// flag is set by an authorized actor, which forces a pass.
//
// Measurements carry the flash-test electrical values and are consumed when
// the pass happens at the last station of the sequence, where the panel
// completes.
type RecordInspectionCommand struct { //nolint:recvcheck //using for validation
	inspectionID        kernel.UUID
	panelID             kernel.UUID
	stationOrdinal      int
	inspectorID         kernel.UUID
	result              panel.InspectionResult
	notes               string
	measurements        *panel.Measurements
	conditionalOverride bool
	recordedAt          time.Time

	guard guard.ConstructorGuard
}

// NewRecordInspectionCommand creates a command to record a station
// inspection. Notes are mandatory for fail results.
func NewRecordInspectionCommand(
	inspectionID kernel.UUID,
	panelID kernel.UUID,
	stationOrdinal int,
	inspectorID kernel.UUID,
	result panel.InspectionResult,
	notes string,
	measurements *panel.Measurements,
	conditionalOverride bool,
	recordedAt time.Time,
) (RecordInspectionCommand, error) {
	cmd := RecordInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(inspectionID, panelID, inspectorID),
		cmd.setStationOrdinal(stationOrdinal),
		cmd.setResult(result, notes),
		cmd.setMeasurements(measurements),
		cmd.setRecordedAt(recordedAt),
	); err != nil {
		return RecordInspectionCommand{}, err
	}

	cmd.conditionalOverride = conditionalOverride
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordInspectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordInspectionCommandIsNotConstructed)
}

// InspectionID returns the identifier assigned to the inspection record.
func (c RecordInspectionCommand) InspectionID() kernel.UUID {
	return c.inspectionID
}

// PanelID returns the inspected panel's identifier.
func (c RecordInspectionCommand) PanelID() kernel.UUID {
	return c.panelID
}

// StationOrdinal returns the 1-based ordinal of the inspected station.
func (c RecordInspectionCommand) StationOrdinal() int {
	return c.stationOrdinal
}

// InspectorID returns the identifier of the inspector.
func (c RecordInspectionCommand) InspectorID() kernel.UUID {
	return c.inspectorID
}

// Result returns the inspection result.
func (c RecordInspectionCommand) Result() panel.InspectionResult {
	return c.result
}

// Notes returns the free-text notes.
func (c RecordInspectionCommand) Notes() string {
	return c.notes
}

// Measurements returns the flash-test measurements, nil when not supplied.
func (c RecordInspectionCommand) Measurements() *panel.Measurements {
	return c.measurements
}

// ConditionalOverride reports whether an authorized actor forces a
// conditional result to count as a pass.
func (c RecordInspectionCommand) ConditionalOverride() bool {
	return c.conditionalOverride
}

// RecordedAt returns the inspection time.
func (c RecordInspectionCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *RecordInspectionCommand) setIDs(inspectionID, panelID, inspectorID kernel.UUID) error {
	if err := errors.Join(
		inspectionID.Validate(),
		panelID.Validate(),
		inspectorID.Validate(),
	); err != nil {
		return err
	}

	c.inspectionID = inspectionID
	c.panelID = panelID
	c.inspectorID = inspectorID
	return nil
}

func (c *RecordInspectionCommand) setStationOrdinal(ordinal int) error {
	if ordinal <= 0 {
		return ErrStationOrdinalIsInvalid
	}

	c.stationOrdinal = ordinal
	return nil
}

func (c *RecordInspectionCommand) setResult(result panel.InspectionResult, notes string) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if result == panel.ResultFail && notes == "" {
		return ErrNotesAreRequired
	}

	c.result = result
	c.notes = notes
	return nil
}

func (c *RecordInspectionCommand) setMeasurements(m *panel.Measurements) error {
	if m != nil {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	c.measurements = m
	return nil
}

func (c *RecordInspectionCommand) setRecordedAt(at time.Time) error {
	if at.IsZero() {
		return ErrRecordedAtIsRequired
	}

	c.recordedAt = at
	return nil
}
