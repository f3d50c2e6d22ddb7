package services

import (
	"fmt"

	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/station"
	"paneltrack/internal/pkg/errs"
)

// StationGate is the domain service deciding whether a panel may enter a
// target station. It is consulted before every station transition.
//
// Business rules:
//   - The target station must exist in the order's station sequence
//   - The panel must be in a state that allows production work
//   - Entry to station k requires a recorded pass at station k-1; the panel
//     therefore only ever enters the next station in sequence
//
// Out-of-order requests are denied with a SequenceViolationError naming the
// station whose pass inspection is missing, never silently corrected.
type StationGate struct{}

// NewStationGate creates a new StationGate instance.
func NewStationGate() StationGate {
	return StationGate{}
}

// Authorize reports whether the panel may enter the station with the given
// ordinal. A nil return means the entry is allowed.
func (g StationGate) Authorize(p *panel.Panel, seq station.Sequence, stationOrdinal int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := seq.Validate(); err != nil {
		return err
	}
	if stationOrdinal < 1 || stationOrdinal > seq.Len() {
		return errs.NewValueIsOutOfRangeError("stationOrdinal", stationOrdinal, 1, seq.Len())
	}

	if !p.State().CanTransitionTo(panel.InProduction) {
		return errs.NewValueIsInvalidErrorWithCause("panel state",
			fmt.Errorf("panel %s in state %s cannot enter a station", p.Barcode(), p.State()))
	}

	if stationOrdinal != p.NextStation() {
		return errs.NewSequenceViolationError(p.Barcode().String(), stationOrdinal, p.NextStation()-1)
	}
	return nil
}
