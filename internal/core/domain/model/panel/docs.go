// Package panel provides the Panel aggregate and its production workflow
// state machine.
//
// The package includes:
//   - Panel: the aggregate root owning a panel's lifecycle from first scan
//     to a terminal state
//   - State: the workflow state machine with its legal transition table
//   - Inspection: the append-only record of a station inspection
//   - Measurements: the electrical measurements captured at the flash test
//
// Key business rules:
//   - A panel enters station k only after a pass inspection at station k-1;
//     out-of-order entry is a sequence violation, never silently corrected
//   - Station completion timestamps are non-decreasing and form a gapless
//     prefix of the station sequence
//   - A fail inspection routes the panel to Failed; an operator may move it
//     to Rework, re-entering the sequence at a chosen station
//   - A conditional inspection routes the panel to Quarantined unless an
//     authorized override forces a pass
//   - Completed is terminal and requires every station timestamp and the
//     electrical measurements to be present, re-validated at the transition
//
// The panel workflow vocabulary is authoritative for panels; order-level
// aggregation reads only the coarse phase mapping exposed by State.Phase.
package panel
