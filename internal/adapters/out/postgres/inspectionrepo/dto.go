// Package inspectionrepo provides data transfer objects and mapping
// functions for inspection persistence. The store is append-only; rows are
// never updated or deleted once written.
package inspectionrepo

import (
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"

	"github.com/google/uuid"
)

// InspectionDTO represents the database structure for persisting inspection
// records. Indexed by panel for per-panel history queries.
type InspectionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PanelID        uuid.UUID `gorm:"type:uuid;not null;index"`
	StationOrdinal int       `gorm:"type:int;not null"`
	InspectorID    uuid.UUID `gorm:"type:uuid;not null"`
	Result         int       `gorm:"type:int;not null"`
	Notes          string    `gorm:"type:text;not null"`
	RecordedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for inspection entities.
// Overrides GORM's default naming convention to use "inspections".
func (InspectionDTO) TableName() string {
	return "inspections"
}

// fromDomain converts an inspection record to its database representation.
func fromDomain(inspection *panel.Inspection) InspectionDTO {
	return InspectionDTO{
		ID:             inspection.ID().Bytes(),
		PanelID:        inspection.PanelID().Bytes(),
		StationOrdinal: inspection.StationOrdinal(),
		InspectorID:    inspection.InspectorID().Bytes(),
		Result:         int(inspection.Result()),
		Notes:          inspection.Notes(),
		RecordedAt:     inspection.RecordedAt(),
	}
}

// toDomain converts a database DTO to an inspection record, re-validating
// through the constructor rather than trusting the stored row.
func toDomain(dto InspectionDTO) (*panel.Inspection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	panelID, err := kernel.UUIDFromBytes(dto.PanelID[:])
	if err != nil {
		return nil, err
	}

	inspectorID, err := kernel.UUIDFromBytes(dto.InspectorID[:])
	if err != nil {
		return nil, err
	}

	return panel.NewInspection(
		id,
		panelID,
		dto.StationOrdinal,
		inspectorID,
		panel.InspectionResult(dto.Result),
		dto.Notes,
		dto.RecordedAt,
	)
}
