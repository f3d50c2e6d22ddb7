package ports

import (
	"context"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/pallet"
)

// PalletRepository defines the persistence contract for pallet aggregates.
type PalletRepository interface {
	// Add persists a new pallet aggregate to storage.
	Add(ctx context.Context, aggregate *pallet.Pallet) error

	// Update persists changes to an existing pallet aggregate.
	Update(ctx context.Context, aggregate *pallet.Pallet) error

	// Get retrieves a pallet aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error)

	// GetAllByOrder retrieves every pallet belonging to an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*pallet.Pallet, error)
}
