package panel

import (
	"errors"
	"fmt"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/station"
	"paneltrack/internal/pkg/errs"
)

// ErrPanelIsNotConstructed is returned when a Panel instance was not created
// through the NewPanel factory method or RestorePanel.
var ErrPanelIsNotConstructed = errors.New("Panel must be created via NewPanel constructor")

// Panel represents a solar panel moving through the production workflow.
// It is the aggregate root that owns the panel's lifecycle from first scan
// to a terminal state.
//
// Panel maintains these invariants:
//   - Station pass timestamps are non-decreasing by station index
//   - A timestamp for station N implies one exists for every station < N
//     (the pass list is a gapless prefix of the station sequence)
//   - Completed implies every station timestamp and the electrical
//     measurements are present
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated transition methods.
type Panel struct {
	// id is the unique identifier for the panel
	id kernel.UUID

	// barcode is the panel's physical identity as scanned
	barcode kernel.Barcode

	// orderID references the owning manufacturing order
	orderID kernel.UUID

	// state is the current workflow state
	state State

	// stationPasses holds one pass timestamp per completed station,
	// index i belonging to station ordinal i+1
	stationPasses []time.Time

	// measurements holds the flash-test electrical measurements,
	// nil until the panel completes
	measurements *Measurements

	// holdReason records why the panel is failed or quarantined
	holdReason string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the panel was created via a constructor
	isConstructed bool
}

// NewPanel creates a panel at first scan in the Scanned state.
func NewPanel(id kernel.UUID, barcode kernel.Barcode, orderID kernel.UUID, scannedAt time.Time) (*Panel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := barcode.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if scannedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("scannedAt")
	}

	return &Panel{
		id:            id,
		barcode:       barcode,
		orderID:       orderID,
		state:         Scanned,
		createdAt:     scannedAt,
		updatedAt:     scannedAt,
		isConstructed: true,
	}, nil
}

// RestorePanel reconstructs a panel from persistence, re-validating every
// invariant rather than trusting the stored representation.
func RestorePanel(
	id kernel.UUID,
	barcode kernel.Barcode,
	orderID kernel.UUID,
	state State,
	stationPasses []time.Time,
	measurements *Measurements,
	holdReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Panel, error) {
	p, err := NewPanel(id, barcode, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}

	for i, ts := range stationPasses {
		if ts.IsZero() {
			return nil, errs.NewValueIsInvalidErrorWithCause("stationPasses",
				fmt.Errorf("station %d has a zero pass timestamp", i+1))
		}
		if i > 0 && ts.Before(stationPasses[i-1]) {
			return nil, errs.NewValueIsInvalidErrorWithCause("stationPasses",
				fmt.Errorf("station %d pass timestamp precedes station %d", i+1, i))
		}
	}

	seq, err := station.DefaultSequence(barcode.Line())
	if err != nil {
		return nil, err
	}
	if len(stationPasses) > seq.Len() {
		return nil, errs.NewValueIsInvalidErrorWithCause("stationPasses",
			fmt.Errorf("%d passes exceed the %d-station sequence", len(stationPasses), seq.Len()))
	}

	if state == Completed {
		if len(stationPasses) != seq.Len() {
			return nil, errs.NewValueIsInvalidErrorWithCause("stationPasses",
				fmt.Errorf("completed panel passed %d of %d stations", len(stationPasses), seq.Len()))
		}
		if measurements == nil {
			return nil, errs.NewValueIsRequiredError("measurements are required for a completed panel")
		}
		if err = measurements.Validate(); err != nil {
			return nil, err
		}
	}

	p.state = state
	p.stationPasses = append([]time.Time(nil), stationPasses...)
	p.measurements = measurements
	p.holdReason = holdReason
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Panel instance was properly constructed.
func (p *Panel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPanelIsNotConstructed
	}
	return nil
}

// IsEqual compares two panels by their unique identifiers.
func (p *Panel) IsEqual(other *Panel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the panel's unique identifier.
func (p *Panel) ID() kernel.UUID {
	return p.id
}

// Barcode returns the panel's barcode.
func (p *Panel) Barcode() kernel.Barcode {
	return p.barcode
}

// OrderID returns the owning manufacturing order's identifier.
func (p *Panel) OrderID() kernel.UUID {
	return p.orderID
}

// State returns the panel's current workflow state.
func (p *Panel) State() State {
	return p.state
}

// StationPasses returns a copy of the per-station pass timestamps.
// Index i belongs to station ordinal i+1.
func (p *Panel) StationPasses() []time.Time {
	return append([]time.Time(nil), p.stationPasses...)
}

// PassedStations returns the number of stations with a recorded pass.
func (p *Panel) PassedStations() int {
	return len(p.stationPasses)
}

// NextStation returns the ordinal of the next station the panel may enter.
func (p *Panel) NextStation() int {
	return len(p.stationPasses) + 1
}

// Measurements returns the flash-test measurements, or nil before completion.
func (p *Panel) Measurements() *Measurements {
	return p.measurements
}

// HoldReason returns why the panel is failed or quarantined; empty otherwise.
func (p *Panel) HoldReason() string {
	return p.holdReason
}

// CreatedAt returns the first-scan time.
func (p *Panel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last state change.
func (p *Panel) UpdatedAt() time.Time {
	return p.updatedAt
}

// MarkValidated moves a freshly scanned panel to Validated once its barcode
// passed grammar validation and the owning order is confirmed.
func (p *Panel) MarkValidated(at time.Time) error {
	newState, err := p.state.TransitionTo(Validated)
	if err != nil {
		return err
	}

	p.state = newState
	p.updatedAt = at
	return nil
}

// RecordStationPass records a pass inspection at the given station and
// advances the panel. The station must be exactly the next one in sequence;
// anything else is a sequence violation. Pass timestamps must not go
// backwards in time.
func (p *Panel) RecordStationPass(stationOrdinal int, at time.Time) error {
	if stationOrdinal != p.NextStation() {
		return errs.NewSequenceViolationError(p.barcode.String(), stationOrdinal, p.NextStation()-1)
	}
	if n := len(p.stationPasses); n > 0 && at.Before(p.stationPasses[n-1]) {
		return errs.NewValueIsInvalidErrorWithCause("pass timestamp",
			fmt.Errorf("station %d pass at %s precedes station %d pass", stationOrdinal, at, n))
	}

	newState, err := p.state.TransitionTo(InProduction)
	if err != nil {
		return err
	}

	p.state = newState
	p.stationPasses = append(p.stationPasses, at)
	p.holdReason = ""
	p.updatedAt = at
	return nil
}

// Complete moves the panel to its terminal state. The full station prefix
// and the electrical measurements are re-validated here, not assumed from
// the prior state.
func (p *Panel) Complete(m Measurements, totalStations int, at time.Time) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if len(p.stationPasses) != totalStations {
		return errs.NewValueIsInvalidErrorWithCause("stationPasses",
			fmt.Errorf("panel %s passed %d of %d stations", p.barcode, len(p.stationPasses), totalStations))
	}

	newState, err := p.state.TransitionTo(Completed)
	if err != nil {
		return err
	}

	p.state = newState
	p.measurements = &m
	p.holdReason = ""
	p.updatedAt = at
	return nil
}

// Fail routes the panel to Failed after a fail inspection.
// The reason is mandatory so the failure cause is never lost.
func (p *Panel) Fail(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newState, err := p.state.TransitionTo(Failed)
	if err != nil {
		return err
	}

	p.state = newState
	p.holdReason = reason
	p.updatedAt = at
	return nil
}

// Quarantine routes the panel to Quarantined after a conditional inspection
// without an authorized override.
func (p *Panel) Quarantine(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newState, err := p.state.TransitionTo(Quarantined)
	if err != nil {
		return err
	}

	p.state = newState
	p.holdReason = reason
	p.updatedAt = at
	return nil
}

// StartRework returns a failed or quarantined panel to the line. The panel
// re-enters the station sequence at reentryOrdinal: passes from that station
// on are discarded and must be earned again, passes before it are kept.
func (p *Panel) StartRework(reentryOrdinal int, at time.Time) error {
	if reentryOrdinal < 1 || reentryOrdinal > p.NextStation() {
		return errs.NewValueIsOutOfRangeError("reentryOrdinal", reentryOrdinal, 1, p.NextStation())
	}

	newState, err := p.state.TransitionTo(Rework)
	if err != nil {
		return err
	}

	p.state = newState
	p.stationPasses = p.stationPasses[:reentryOrdinal-1]
	p.measurements = nil
	p.updatedAt = at
	return nil
}
