package panel

import (
	"fmt"

	"paneltrack/internal/pkg/errs"
)

// State represents the workflow state of a panel. It implements a state
// machine with defined transitions to ensure panels follow the production
// workflow.
//
// State transitions:
//
//	Scanned ──> Validated ──> InProduction ──> Completed
//	                │              │ ▲
//	                │              ▼ │
//	                └────────> Failed/Quarantined ──> Rework ──┘
//
// A pass inspection moves Validated or Rework panels into InProduction and
// advances InProduction panels station by station. Completed is terminal.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Scanned is the initial state set when a barcode is first scanned.
	Scanned

	// Validated indicates the barcode passed grammar validation and the
	// panel is registered against its manufacturing order.
	Validated

	// InProduction indicates the panel is moving through the station
	// sequence with at least one pass inspection recorded.
	InProduction

	// Completed indicates the panel passed every station and its
	// electrical measurements are recorded. Terminal.
	Completed

	// Failed indicates a fail inspection. The panel waits for an operator
	// decision; the only legal exit is Rework.
	Failed

	// Rework indicates an operator returned the panel to the line,
	// re-entering the station sequence at a chosen station.
	Rework

	// Quarantined indicates a conditional inspection without an authorized
	// override. The only legal exit is Rework.
	Quarantined
)

// Phase is the coarse progress classification order-level aggregation uses.
// It is the explicit mapping table between the panel workflow vocabulary and
// the order status vocabulary.
type Phase int

const (
	// PhasePending covers panels scanned but not yet in production.
	PhasePending Phase = iota

	// PhaseInProgress covers panels on the line, in rework or quarantined.
	PhaseInProgress

	// PhaseCompleted covers terminally completed panels.
	PhaseCompleted

	// PhaseFailed covers failed panels awaiting an operator decision.
	PhaseFailed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:      "Unknown",
		Scanned:      "Scanned",
		Validated:    "Validated",
		InProduction: "InProduction",
		Completed:    "Completed",
		Failed:       "Failed",
		Rework:       "Rework",
		Quarantined:  "Quarantined",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Scanned:      "Scanned",
		Validated:    "Validated",
		InProduction: "InProduction",
		Completed:    "Completed",
		Failed:       "Failed",
		Rework:       "Rework",
		Quarantined:  "Quarantined",
	}
}

// transitions is the legal transition table. A state maps to the set of
// states it may move to; Completed maps to nothing.
func transitions() map[State][]State {
	return map[State][]State{
		Scanned:      {Validated},
		Validated:    {InProduction, Failed, Quarantined},
		InProduction: {InProduction, Completed, Failed, Quarantined},
		Failed:       {Rework},
		Rework:       {InProduction, Failed, Quarantined},
		Quarantined:  {Rework},
		Completed:    {},
	}
}

// Validate checks if the State value is valid.
// Unknown (0) and any other values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid panel state", int(s)))
	}
	return nil
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface and is safe to call on
// any State value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table allows moving from
// the receiver to the target state.
func (s State) CanTransitionTo(target State) bool {
	for _, t := range transitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target state if the transition is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) if the transition table forbids the move
func (s State) TransitionTo(target State) (State, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("transition %s -> %s is not allowed", s, target))
	}
	return target, nil
}

// IsTerminal reports whether the state admits no further transitions.
func (s State) IsTerminal() bool {
	return s == Completed
}

// Phase maps the workflow state to its coarse progress classification.
// This is the only view of panel state that order-level aggregation reads.
func (s State) Phase() Phase {
	switch s {
	case Completed:
		return PhaseCompleted
	case Failed:
		return PhaseFailed
	case InProduction, Rework, Quarantined:
		return PhaseInProgress
	case Scanned, Validated, Unknown:
		return PhasePending
	default:
		return PhasePending
	}
}
