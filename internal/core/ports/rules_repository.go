package ports

import (
	"context"

	"paneltrack/internal/core/domain/model/rules"
)

// RuleSetRepository defines the persistence contract for closure rule sets.
// Every amendment is stored as a new version; GetCurrent returns the highest.
type RuleSetRepository interface {
	// Add persists a new rule set version.
	Add(ctx context.Context, ruleSet rules.ClosureRuleSet) error

	// GetCurrent retrieves the rule set with the highest version.
	// Returns an ObjectNotFoundError when no rule set has been stored.
	GetCurrent(ctx context.Context) (rules.ClosureRuleSet, error)

	// GetByVersion retrieves a specific rule set version.
	GetByVersion(ctx context.Context, version int) (rules.ClosureRuleSet, error)
}
