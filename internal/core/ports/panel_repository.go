// Package ports defines repository interfaces for the production domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"
)

// PanelRepository defines the persistence contract for panel aggregates.
type PanelRepository interface {
	// Add persists a new panel aggregate to storage.
	// The panel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *panel.Panel) error

	// Update persists changes to an existing panel aggregate.
	Update(ctx context.Context, aggregate *panel.Panel) error

	// Get retrieves a panel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*panel.Panel, error)

	// GetByBarcode retrieves a panel by its scanned barcode.
	// Barcodes are unique across the plant.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*panel.Panel, error)

	// GetAllByOrder retrieves every panel scanned against an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*panel.Panel, error)
}

// InspectionRepository defines the persistence contract for inspection
// results. Inspections are append-only per panel/station pair.
type InspectionRepository interface {
	// Append persists a new inspection result.
	Append(ctx context.Context, inspection *panel.Inspection) error

	// GetAllByPanel retrieves a panel's inspections in creation order.
	GetAllByPanel(ctx context.Context, panelID kernel.UUID) ([]*panel.Inspection, error)
}
