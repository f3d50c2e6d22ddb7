package auditrepo

import (
	"context"
	"errors"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
// Audit records are immutable rows, so no tracker is involved.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists a new audit record.
func (r *GormAuditRepository) Append(ctx context.Context, record *audit.ClosureRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByOrder retrieves an order's audit records in creation order.
func (r *GormAuditRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*audit.ClosureRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ClosureRecordDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*audit.ClosureRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetLatestClosure retrieves the most recent closure record of an order
// that no rollback reverses. Each rollback names the record it compensated,
// so a closure is still reversible exactly when nothing references it.
func (r *GormAuditRepository) GetLatestClosure(
	ctx context.Context,
	orderID kernel.UUID,
) (*audit.ClosureRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ClosureRecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind != ?", orderID.Bytes(), int(audit.KindRollback)).
		Where(`id NOT IN (
			SELECT reverses_record_id FROM closure_records
			WHERE order_id = ? AND kind = ? AND reverses_record_id IS NOT NULL
		)`, orderID.Bytes(), int(audit.KindRollback)).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("closure record", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
