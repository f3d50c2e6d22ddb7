package ports

import (
	"context"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the closure audit
// trail. The store is append-only; no update or delete is exposed.
type AuditRepository interface {
	// Append persists a new audit record.
	Append(ctx context.Context, record *audit.ClosureRecord) error

	// GetAllByOrder retrieves an order's audit records in creation order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.ClosureRecord, error)

	// GetLatestClosure retrieves the most recent closure record of an order
	// that no rollback record reverses. Returns an ObjectNotFoundError when
	// every closure has been rolled back or none exists.
	GetLatestClosure(ctx context.Context, orderID kernel.UUID) (*audit.ClosureRecord, error)
}
