// Package rules provides the versioned closure rule set value object.
// A rule set drives the readiness assessment of a manufacturing order.
// Rule sets are immutable once created; amending the rules produces a new
// set with a higher version, so audit records can name the exact rules
// that were in force at closure time.
package rules

import (
	"fmt"

	"paneltrack/internal/pkg/errs"
)

// ClosureRuleSet holds the thresholds an order must satisfy before
// closure. Version 1 is the factory default.
type ClosureRuleSet struct {
	version                   int
	minCompletionPercent      float64
	maxFailureRatePercent     float64
	minPanelsForClosure       int
	maxIdleHours              float64
	requirePalletFinalization bool

	isConstructed bool
}

// NewClosureRuleSet creates a rule set with the given version and thresholds.
func NewClosureRuleSet(
	version int,
	minCompletionPercent float64,
	maxFailureRatePercent float64,
	minPanelsForClosure int,
	maxIdleHours float64,
	requirePalletFinalization bool,
) (ClosureRuleSet, error) {
	if version <= 0 {
		return ClosureRuleSet{}, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	if minCompletionPercent < 0 || minCompletionPercent > 100 {
		return ClosureRuleSet{}, errs.NewValueIsOutOfRangeError(
			"minCompletionPercent", minCompletionPercent, 0, 100)
	}
	if maxFailureRatePercent < 0 || maxFailureRatePercent > 100 {
		return ClosureRuleSet{}, errs.NewValueIsOutOfRangeError(
			"maxFailureRatePercent", maxFailureRatePercent, 0, 100)
	}
	if minPanelsForClosure < 0 {
		return ClosureRuleSet{}, errs.NewValueIsInvalidErrorWithCause("minPanelsForClosure",
			fmt.Errorf("%d is negative", minPanelsForClosure))
	}
	if maxIdleHours < 0 {
		return ClosureRuleSet{}, errs.NewValueIsInvalidErrorWithCause("maxIdleHours",
			fmt.Errorf("%f is negative", maxIdleHours))
	}

	return ClosureRuleSet{
		version:                   version,
		minCompletionPercent:      minCompletionPercent,
		maxFailureRatePercent:     maxFailureRatePercent,
		minPanelsForClosure:       minPanelsForClosure,
		maxIdleHours:              maxIdleHours,
		requirePalletFinalization: requirePalletFinalization,
		isConstructed:             true,
	}, nil
}

// DefaultRuleSet returns the version 1 factory rules: full completion,
// at most 5% failures, at least one panel, 24 idle hours before a closure
// is suggested, pallet finalization required.
func DefaultRuleSet() ClosureRuleSet {
	rs, err := NewClosureRuleSet(1, 100, 5, 1, 24, true)
	if err != nil {
		panic(err)
	}
	return rs
}

// Amend produces the successor rule set: the given thresholds under
// version n+1.
func (r ClosureRuleSet) Amend(
	minCompletionPercent float64,
	maxFailureRatePercent float64,
	minPanelsForClosure int,
	maxIdleHours float64,
	requirePalletFinalization bool,
) (ClosureRuleSet, error) {
	if err := r.Validate(); err != nil {
		return ClosureRuleSet{}, err
	}
	return NewClosureRuleSet(
		r.version+1,
		minCompletionPercent,
		maxFailureRatePercent,
		minPanelsForClosure,
		maxIdleHours,
		requirePalletFinalization,
	)
}

// Validate ensures the rule set was properly constructed.
func (r ClosureRuleSet) Validate() error {
	if !r.isConstructed {
		return errs.NewValueIsRequiredError("ClosureRuleSet")
	}
	return nil
}

// Version returns the rule set's version number.
func (r ClosureRuleSet) Version() int {
	return r.version
}

// MinCompletionPercent returns the minimum completion percentage required
// for an unforced closure.
func (r ClosureRuleSet) MinCompletionPercent() float64 {
	return r.minCompletionPercent
}

// MaxFailureRatePercent returns the highest tolerated failure rate.
func (r ClosureRuleSet) MaxFailureRatePercent() float64 {
	return r.maxFailureRatePercent
}

// MinPanelsForClosure returns the minimum number of completed panels.
func (r ClosureRuleSet) MinPanelsForClosure() int {
	return r.minPanelsForClosure
}

// MaxIdleHours returns how long an order may sit without activity before
// the idle criterion counts against readiness.
func (r ClosureRuleSet) MaxIdleHours() float64 {
	return r.maxIdleHours
}

// RequirePalletFinalization reports whether every pallet of the order must
// be finalized before closure.
func (r ClosureRuleSet) RequirePalletFinalization() bool {
	return r.requirePalletFinalization
}
