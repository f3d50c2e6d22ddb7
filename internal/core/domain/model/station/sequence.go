package station

import (
	"fmt"

	"paneltrack/internal/pkg/errs"
)

// Sequence is the ordered set of stations a panel must pass through.
// Ordinals are contiguous starting at 1; the last station is the terminal
// inspection whose pass, together with electrical measurements, completes
// a panel.
type Sequence struct {
	stations []Station
}

// NewSequence builds a sequence from stations. The stations must have
// contiguous ordinals 1..n and all belong to the same line.
func NewSequence(stations []Station) (Sequence, error) {
	if len(stations) == 0 {
		return Sequence{}, errs.NewValueIsRequiredError("stations")
	}

	line := stations[0].Line()
	for i, st := range stations {
		if st.Ordinal() != i+1 {
			return Sequence{}, errs.NewValueIsInvalidErrorWithCause("stations",
				fmt.Errorf("ordinal %d at position %d breaks the contiguous 1..n ordering", st.Ordinal(), i))
		}
		if st.Line() != line {
			return Sequence{}, errs.NewValueIsInvalidErrorWithCause("stations",
				fmt.Errorf("station %s belongs to line %d, sequence line is %d", st.Code(), st.Line(), line))
		}
	}

	seq := Sequence{stations: make([]Station, len(stations))}
	copy(seq.stations, stations)
	return seq, nil
}

// DefaultSequence returns the standard seven-station panel production
// sequence for the given line.
func DefaultSequence(line int) (Sequence, error) {
	specs := []struct {
		code string
		name string
	}{
		{"STRING", "Cell Stringing"},
		{"LAYUP", "Layup"},
		{"LAM", "Lamination"},
		{"FRAME", "Framing"},
		{"JBOX", "Junction Box"},
		{"FLASH", "Flash Test"},
		{"FINAL", "Final Inspection"},
	}

	stations := make([]Station, 0, len(specs))
	for i, sp := range specs {
		st, err := NewStation(i+1, sp.code, sp.name, line)
		if err != nil {
			return Sequence{}, err
		}
		stations = append(stations, st)
	}

	return NewSequence(stations)
}

// Len returns the number of stations in the sequence.
func (s Sequence) Len() int {
	return len(s.stations)
}

// ByOrdinal returns the station at the given 1-based ordinal.
func (s Sequence) ByOrdinal(ordinal int) (Station, error) {
	if ordinal < 1 || ordinal > len(s.stations) {
		return Station{}, errs.NewValueIsOutOfRangeError("station ordinal", ordinal, 1, len(s.stations))
	}
	return s.stations[ordinal-1], nil
}

// First returns the first station of the sequence.
func (s Sequence) First() Station {
	return s.stations[0]
}

// IsTerminal reports whether the given ordinal is the last station.
func (s Sequence) IsTerminal(ordinal int) bool {
	return ordinal == len(s.stations)
}

// Stations returns a copy of the ordered station list.
func (s Sequence) Stations() []Station {
	out := make([]Station, len(s.stations))
	copy(out, s.stations)
	return out
}

// Validate checks that the sequence was built through a constructor.
func (s Sequence) Validate() error {
	if len(s.stations) == 0 {
		return errs.NewValueIsRequiredError(
			"sequence must be created via NewSequence or DefaultSequence")
	}
	return nil
}
