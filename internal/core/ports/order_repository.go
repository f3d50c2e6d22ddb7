package ports

import (
	"context"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for manufacturing order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusGuarded persists the aggregate only if the stored status
	// still equals expectedStatus. When another transaction changed the
	// status first, it returns a ConcurrentModificationError and writes
	// nothing. This is the serialization point for closure and rollback.
	UpdateStatusGuarded(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// RegisterCompletedPanel increments the order's completed count
	// atomically in storage, guarded by status and target quantity.
	// Concurrent final-station passes for different panels of the same
	// order each count exactly once; a read-modify-write through Get and
	// Update would let the later writer overwrite the earlier increment.
	RegisterCompletedPanel(ctx context.Context, orderID kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProgress retrieves orders whose production is underway.
	// The closure scan job walks these looking for closure candidates.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
