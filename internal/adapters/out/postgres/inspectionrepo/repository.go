package inspectionrepo

import (
	"context"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"

	"gorm.io/gorm"
)

// GormInspectionRepository implements InspectionRepository using GORM.
type GormInspectionRepository struct {
	db *gorm.DB
}

// NewGormInspectionRepository creates a new GORM inspection repository.
// Inspections carry no aggregate lifecycle, so no tracker is involved.
func NewGormInspectionRepository(db *gorm.DB) *GormInspectionRepository {
	return &GormInspectionRepository{db: db}
}

// Append persists a new inspection record.
func (r *GormInspectionRepository) Append(ctx context.Context, inspection *panel.Inspection) error {
	if err := inspection.Validate(); err != nil {
		return err
	}

	dto := fromDomain(inspection)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByPanel retrieves a panel's inspections in recording order.
func (r *GormInspectionRepository) GetAllByPanel(
	ctx context.Context,
	panelID kernel.UUID,
) ([]*panel.Inspection, error) {
	if err := panelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InspectionDTO
	if err := r.db.WithContext(ctx).
		Order("recorded_at, id").
		Find(&dtos, "panel_id = ?", panelID.Bytes()).Error; err != nil {
		return nil, err
	}

	inspections := make([]*panel.Inspection, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		inspections = append(inspections, i)
	}

	return inspections, nil
}
