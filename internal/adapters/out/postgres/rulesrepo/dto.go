// Package rulesrepo provides data transfer objects and mapping functions
// for closure rule set persistence. Every amendment is a new versioned row;
// earlier versions stay readable for the audit trail.
package rulesrepo

import (
	"paneltrack/internal/core/domain/model/rules"
)

// RuleSetDTO represents the database structure for persisting closure rule
// sets, keyed by version.
type RuleSetDTO struct {
	Version                   int     `gorm:"type:int;primaryKey"`
	MinCompletionPercent      float64 `gorm:"type:numeric;not null"`
	MaxFailureRatePercent     float64 `gorm:"type:numeric;not null"`
	MinPanelsForClosure       int     `gorm:"type:int;not null"`
	MaxIdleHours              float64 `gorm:"type:numeric;not null"`
	RequirePalletFinalization bool    `gorm:"not null"`
}

// TableName specifies the database table name for rule set entities.
// Overrides GORM's default naming convention to use "closure_rule_sets".
func (RuleSetDTO) TableName() string {
	return "closure_rule_sets"
}

// fromDomain converts a rule set value object to its database representation.
func fromDomain(ruleSet rules.ClosureRuleSet) RuleSetDTO {
	return RuleSetDTO{
		Version:                   ruleSet.Version(),
		MinCompletionPercent:      ruleSet.MinCompletionPercent(),
		MaxFailureRatePercent:     ruleSet.MaxFailureRatePercent(),
		MinPanelsForClosure:       ruleSet.MinPanelsForClosure(),
		MaxIdleHours:              ruleSet.MaxIdleHours(),
		RequirePalletFinalization: ruleSet.RequirePalletFinalization(),
	}
}

// toDomain converts a database DTO to a rule set value object, re-running
// threshold validation through the constructor.
func toDomain(dto RuleSetDTO) (rules.ClosureRuleSet, error) {
	return rules.NewClosureRuleSet(
		dto.Version,
		dto.MinCompletionPercent,
		dto.MaxFailureRatePercent,
		dto.MinPanelsForClosure,
		dto.MaxIdleHours,
		dto.RequirePalletFinalization,
	)
}
