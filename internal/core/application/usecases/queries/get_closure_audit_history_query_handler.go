package queries

import (
	"context"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClosureAuditHistoryQueryHandler reads the audit trail straight from
// the closure_records table, bypassing the aggregate mapping. The snapshot
// column is deliberately not selected; history views only need the who,
// what and when of each entry.
type GetClosureAuditHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetClosureAuditHistoryQueryHandler creates a handler for audit trail
// queries. Requires a GORM database connection for query execution.
func NewGetClosureAuditHistoryQueryHandler(db *gorm.DB) GetClosureAuditHistoryQueryHandler {
	return GetClosureAuditHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the order's audit records in
// creation order.
func (h GetClosureAuditHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetClosureAuditHistoryQuery,
) ([]GetClosureAuditHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetClosureAuditHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			actor_id,
			forced,
			rule_version,
			prior_status,
			reason,
			reverses_record_id,
			created_at
		FROM closure_records
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetClosureAuditHistoryQueryResponse
		var id, actorID uuid.UUID
		var reverses uuid.NullUUID
		var kind, priorStatus int

		err = rows.Scan(
			&id,
			&kind,
			&actorID,
			&record.Forced,
			&record.RuleVersion,
			&priorStatus,
			&record.Reason,
			&reverses,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		record.ActorID = actor

		if reverses.Valid {
			reversed, revErr := kernel.UUIDFromBytes(reverses.UUID[:])
			if revErr != nil {
				return nil, revErr
			}
			record.ReversesRecordID = &reversed
		}

		record.Kind = audit.Kind(kind)
		record.PriorStatus = order.Status(priorStatus)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
