package queries

import (
	"errors"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/pkg/errs"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrAssessClosureReadinessQueryIsNotConstructed = errors.New(
		"AssessClosureReadinessQuery must be created via NewAssessClosureReadinessQuery constructor",
	)
)

// AssessClosureReadinessQuery evaluates whether a manufacturing order could
// be closed right now, without closing it. The answer is advisory: the
// closure command re-assesses inside its own transaction.
//
// Example:
//
//	query := NewAssessClosureReadinessQuery(orderID)
//	readiness, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !readiness.IsReady {
//	    fmt.Printf("blocked: %v\n", readiness.Blockers)
//	}
type AssessClosureReadinessQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssessClosureReadinessQuery creates a readiness query for one order.
func NewAssessClosureReadinessQuery(orderID kernel.UUID) (AssessClosureReadinessQuery, error) {
	if err := orderID.Validate(); err != nil {
		return AssessClosureReadinessQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return AssessClosureReadinessQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order under assessment.
func (q AssessClosureReadinessQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q AssessClosureReadinessQuery) Validate() error {
	return q.guard.Validate(ErrAssessClosureReadinessQueryIsNotConstructed)
}

// AssessClosureReadinessQueryResponse carries the assessment outcome along
// with the inputs it was computed from, so callers can display both the
// verdict and the underlying numbers.
type AssessClosureReadinessQueryResponse struct {
	OrderNumber string
	IsReady     bool
	Percentage  float64
	Blockers    []services.Blocker
	RuleVersion int
	Statistics  order.Statistics
}
