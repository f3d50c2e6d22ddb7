package queries

import (
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrGetClosureAuditHistoryQueryIsNotConstructed = errors.New(
		"GetClosureAuditHistoryQuery must be created via NewGetClosureAuditHistoryQuery constructor",
	)
)

// GetClosureAuditHistoryQuery retrieves the closure audit trail of one
// order: every closure and rollback, oldest first.
//
// Example:
//
//	query := NewGetClosureAuditHistoryQuery(orderID)
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, r := range records {
//	    fmt.Printf("%s %s by %s\n", r.CreatedAt, r.Kind, r.ActorID)
//	}
type GetClosureAuditHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClosureAuditHistoryQuery creates an audit history query for one order.
func NewGetClosureAuditHistoryQuery(orderID kernel.UUID) (GetClosureAuditHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetClosureAuditHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetClosureAuditHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose audit trail is requested.
func (q GetClosureAuditHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetClosureAuditHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetClosureAuditHistoryQueryIsNotConstructed)
}

// GetClosureAuditHistoryQueryResponse represents one audit trail entry.
// ReversesRecordID is set only on rollback entries and names the closure
// record the rollback compensated.
type GetClosureAuditHistoryQueryResponse struct {
	ID               kernel.UUID
	Kind             audit.Kind
	ActorID          kernel.UUID
	Forced           bool
	RuleVersion      int
	PriorStatus      order.Status
	Reason           string
	ReversesRecordID *kernel.UUID
	CreatedAt        time.Time
}
