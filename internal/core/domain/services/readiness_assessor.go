package services

import (
	"fmt"
	"time"

	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/rules"
)

// Blocker codes, one per closure rule, in evaluation order.
const (
	BlockerCompletionPercentage = "completion_percentage"
	BlockerFailureRate          = "failure_rate"
	BlockerMinPanels            = "min_panels"
	BlockerIdleTime             = "idle_time"
	BlockerPalletFinalization   = "pallet_finalization"
)

// Rule weights for the readiness score. They sum to 100 so the score reads
// as a percentage.
const (
	weightCompletion = 40.0
	weightFailure    = 25.0
	weightMinPanels  = 15.0
	weightIdle       = 10.0
	weightPallets    = 10.0
)

// PalletFinalization describes the pallet state of an order as seen by the
// assessor. Unknown means the caller could not determine it; the rule then
// degrades to an unknown blocker instead of failing the assessment.
type PalletFinalization int

const (
	PalletsUnknown PalletFinalization = iota
	PalletsFinalized
	PalletsPending
)

// Blocker is one unmet closure rule. Code identifies the rule, Detail is a
// human-readable explanation.
type Blocker struct {
	Code   string
	Detail string
}

// Readiness is the outcome of a closure readiness assessment. Percentage is
// a weighted score across all rules, so partial credit stays visible even
// when IsReady is false. Blockers are ordered by rule evaluation order.
type Readiness struct {
	IsReady    bool
	Percentage float64
	Blockers   []Blocker
}

// BlockerStrings flattens the blockers for error payloads and logs.
func (r Readiness) BlockerStrings() []string {
	out := make([]string, 0, len(r.Blockers))
	for _, b := range r.Blockers {
		out = append(out, fmt.Sprintf("%s: %s", b.Code, b.Detail))
	}
	return out
}

// ReadinessAssessor evaluates a closure rule set against fresh progress
// statistics. It is pure; callers are responsible for supplying statistics
// that are recomputed rather than served from a cache.
type ReadinessAssessor struct{}

// NewReadinessAssessor creates a new ReadinessAssessor instance.
func NewReadinessAssessor() ReadinessAssessor {
	return ReadinessAssessor{}
}

// Assess evaluates the rules in a fixed order: completion percentage,
// failure rate, minimum panel count, idle time, pallet finalization.
// Each unmet rule contributes one blocker; the rules that measure progress
// toward a target grant proportional partial credit.
func (a ReadinessAssessor) Assess(
	ruleSet rules.ClosureRuleSet,
	stats order.Statistics,
	pallets PalletFinalization,
	now time.Time,
) (Readiness, error) {
	if err := ruleSet.Validate(); err != nil {
		return Readiness{}, err
	}

	var score float64
	var blockers []Blocker

	// Completion percentage.
	if stats.CompletionPercent >= ruleSet.MinCompletionPercent() {
		score += weightCompletion
	} else {
		if ruleSet.MinCompletionPercent() > 0 {
			score += weightCompletion * stats.CompletionPercent / ruleSet.MinCompletionPercent()
		}
		remaining := stats.TargetQuantity - stats.CompletedPanels
		blockers = append(blockers, Blocker{
			Code: BlockerCompletionPercentage,
			Detail: fmt.Sprintf("%d of %d panels completed, %d remaining (%.1f%% of required %.1f%%)",
				stats.CompletedPanels, stats.TargetQuantity, remaining,
				stats.CompletionPercent, ruleSet.MinCompletionPercent()),
		})
	}

	// Failure rate.
	if stats.FailureRatePercent <= ruleSet.MaxFailureRatePercent() {
		score += weightFailure
	} else {
		blockers = append(blockers, Blocker{
			Code: BlockerFailureRate,
			Detail: fmt.Sprintf("failure rate %.1f%% exceeds the allowed %.1f%%",
				stats.FailureRatePercent, ruleSet.MaxFailureRatePercent()),
		})
	}

	// Minimum panel count.
	if stats.CompletedPanels >= ruleSet.MinPanelsForClosure() {
		score += weightMinPanels
	} else {
		if ruleSet.MinPanelsForClosure() > 0 {
			score += weightMinPanels * float64(stats.CompletedPanels) / float64(ruleSet.MinPanelsForClosure())
		}
		blockers = append(blockers, Blocker{
			Code: BlockerMinPanels,
			Detail: fmt.Sprintf("%d panels completed, at least %d required",
				stats.CompletedPanels, ruleSet.MinPanelsForClosure()),
		})
	}

	// Idle time since the last panel activity.
	switch {
	case stats.LastActivityAt == nil:
		blockers = append(blockers, Blocker{
			Code:   BlockerIdleTime,
			Detail: "last activity time is unknown",
		})
	case now.Sub(*stats.LastActivityAt).Hours() <= ruleSet.MaxIdleHours():
		score += weightIdle
	default:
		blockers = append(blockers, Blocker{
			Code: BlockerIdleTime,
			Detail: fmt.Sprintf("order idle for %.1f hours, at most %.1f allowed",
				now.Sub(*stats.LastActivityAt).Hours(), ruleSet.MaxIdleHours()),
		})
	}

	// Pallet finalization, when the rule set requires it.
	switch {
	case !ruleSet.RequirePalletFinalization():
		score += weightPallets
	case pallets == PalletsFinalized:
		score += weightPallets
	case pallets == PalletsPending:
		blockers = append(blockers, Blocker{
			Code:   BlockerPalletFinalization,
			Detail: "not all pallets of the order are finalized",
		})
	default:
		blockers = append(blockers, Blocker{
			Code:   BlockerPalletFinalization,
			Detail: "pallet finalization state is unknown",
		})
	}

	return Readiness{
		IsReady:    len(blockers) == 0,
		Percentage: score,
		Blockers:   blockers,
	}, nil
}
