package commands

import (
	"errors"

	"paneltrack/internal/pkg/guard"
)

var ErrUpdateClosureRulesCommandIsNotConstructed = errors.New(
	"UpdateClosureRulesCommand must be created via NewUpdateClosureRulesCommand constructor",
)

// UpdateClosureRulesCommand amends the closure rule set. The amendment is
// stored as a new version; existing audit records keep referencing the
// version that was in force when they were written.
type UpdateClosureRulesCommand struct { //nolint:recvcheck //using for validation
	minCompletionPercent      float64
	maxFailureRatePercent     float64
	minPanelsForClosure       int
	maxIdleHours              float64
	requirePalletFinalization bool

	guard guard.ConstructorGuard
}

// NewUpdateClosureRulesCommand creates a command carrying the new
// thresholds. Threshold validation happens in the rules value object when
// the handler builds the new version.
func NewUpdateClosureRulesCommand(
	minCompletionPercent float64,
	maxFailureRatePercent float64,
	minPanelsForClosure int,
	maxIdleHours float64,
	requirePalletFinalization bool,
) (UpdateClosureRulesCommand, error) {
	return UpdateClosureRulesCommand{
		minCompletionPercent:      minCompletionPercent,
		maxFailureRatePercent:     maxFailureRatePercent,
		minPanelsForClosure:       minPanelsForClosure,
		maxIdleHours:              maxIdleHours,
		requirePalletFinalization: requirePalletFinalization,
		guard:                     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClosureRulesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClosureRulesCommandIsNotConstructed)
}

// MinCompletionPercent returns the new minimum completion percentage.
func (c UpdateClosureRulesCommand) MinCompletionPercent() float64 {
	return c.minCompletionPercent
}

// MaxFailureRatePercent returns the new maximum failure rate.
func (c UpdateClosureRulesCommand) MaxFailureRatePercent() float64 {
	return c.maxFailureRatePercent
}

// MinPanelsForClosure returns the new minimum completed panel count.
func (c UpdateClosureRulesCommand) MinPanelsForClosure() int {
	return c.minPanelsForClosure
}

// MaxIdleHours returns the new idle time allowance.
func (c UpdateClosureRulesCommand) MaxIdleHours() float64 {
	return c.maxIdleHours
}

// RequirePalletFinalization returns whether pallet finalization is required.
func (c UpdateClosureRulesCommand) RequirePalletFinalization() bool {
	return c.requirePalletFinalization
}
