// Package palletrepo provides data transfer objects and mapping functions
// for pallet persistence. Pallet assignments live in a child table, one row
// per assigned panel, keeping the assignment order.
package palletrepo

import (
	"sort"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/pallet"

	"github.com/google/uuid"
)

// PalletDTO represents the database structure for persisting pallet
// aggregates. Indexed by order so closure can list an order's pallets.
type PalletDTO struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Capacity  int                   `gorm:"type:int;not null"`
	Finalized bool                  `gorm:"not null"`
	Panels    []PalletAssignmentDTO `gorm:"foreignKey:PalletID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for pallet entities.
// Overrides GORM's default naming convention to use "pallets".
func (PalletDTO) TableName() string {
	return "pallets"
}

// PalletAssignmentDTO represents one panel's slot on a pallet.
type PalletAssignmentDTO struct {
	PalletID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"type:int;primaryKey"`
	PanelID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName specifies the database table name for pallet assignments.
// Overrides GORM's default naming convention to use "pallet_assignments".
func (PalletAssignmentDTO) TableName() string {
	return "pallet_assignments"
}

// fromDomain converts a pallet domain aggregate to its database representation.
func fromDomain(aggregate *pallet.Pallet) PalletDTO {
	palletID := aggregate.ID().Bytes()

	panelIDs := aggregate.PanelIDs()
	assignments := make([]PalletAssignmentDTO, 0, len(panelIDs))
	for i, panelID := range panelIDs {
		assignments = append(assignments, PalletAssignmentDTO{
			PalletID: palletID,
			Position: i + 1,
			PanelID:  panelID.Bytes(),
		})
	}

	return PalletDTO{
		ID:        palletID,
		OrderID:   aggregate.OrderID().Bytes(),
		Capacity:  aggregate.Capacity(),
		Finalized: aggregate.IsFinalized(),
		Panels:    assignments,
	}
}

// toDomain converts a database DTO to a pallet domain aggregate.
// Reconstructs the assignment order using RestorePallet.
func toDomain(dto PalletDTO) (*pallet.Pallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Panels, func(i, j int) bool {
		return dto.Panels[i].Position < dto.Panels[j].Position
	})
	panelIDs := make([]kernel.UUID, 0, len(dto.Panels))
	for _, a := range dto.Panels {
		panelID, pErr := kernel.UUIDFromBytes(a.PanelID[:])
		if pErr != nil {
			return nil, pErr
		}
		panelIDs = append(panelIDs, panelID)
	}

	return pallet.RestorePallet(id, orderID, dto.Capacity, panelIDs, dto.Finalized)
}
