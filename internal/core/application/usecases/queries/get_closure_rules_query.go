package queries

import (
	"errors"

	"paneltrack/internal/pkg/guard"
)

var (
	ErrGetClosureRulesQueryIsNotConstructed = errors.New(
		"GetClosureRulesQuery must be created via NewGetClosureRulesQuery constructor",
	)
)

// GetClosureRulesQuery retrieves the closure rule set currently in force.
// This is a parameterless query; the current set is the highest stored
// version, or the built-in default when nothing has been amended yet.
type GetClosureRulesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClosureRulesQuery creates a query for the current closure rules.
func NewGetClosureRulesQuery() GetClosureRulesQuery {
	return GetClosureRulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetClosureRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetClosureRulesQueryIsNotConstructed)
}

// GetClosureRulesQueryResponse represents the thresholds of the rule set
// currently applied by closure assessments.
type GetClosureRulesQueryResponse struct {
	Version                   int
	MinCompletionPercent      float64
	MaxFailureRatePercent     float64
	MinPanelsForClosure       int
	MaxIdleHours              float64
	RequirePalletFinalization bool
}
