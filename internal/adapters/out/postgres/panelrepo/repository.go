package panelrepo

import (
	"context"
	"errors"
	"fmt"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormPanelRepository implements PanelRepository using GORM.
type GormPanelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPanelRepository creates a new GORM panel repository.
func NewGormPanelRepository(db *gorm.DB, tracker aggregateTracker) *GormPanelRepository {
	return &GormPanelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new panel to the database. A barcode already stored for
// another panel surfaces as a ValueIsInvalidError, not a driver error.
func (r *GormPanelRepository) Add(ctx context.Context, aggregate *panel.Panel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("barcode",
				fmt.Errorf("panel %s is already registered", aggregate.Barcode()))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Update saves an existing panel to the database.
func (r *GormPanelRepository) Update(ctx context.Context, aggregate *panel.Panel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update the pass history
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Rework truncates the pass history; rows past the current station must go.
	if err := r.db.WithContext(ctx).
		Where("panel_id = ? AND ordinal > ?", dto.ID, len(dto.StationPasses)).
		Delete(&StationPassDTO{}).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a panel by ID.
func (r *GormPanelRepository) Get(ctx context.Context, id kernel.UUID) (*panel.Panel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PanelDTO
	if err := r.db.WithContext(ctx).Preload("StationPasses").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("panel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBarcode retrieves a panel by its scanned barcode.
func (r *GormPanelRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*panel.Panel, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto PanelDTO
	if err := r.db.WithContext(ctx).Preload("StationPasses").
		First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("panel", barcode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every panel scanned against an order.
// Results are sorted by barcode for consistent output.
func (r *GormPanelRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*panel.Panel, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PanelDTO
	if err := r.db.WithContext(ctx).Preload("StationPasses").
		Order("barcode").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	panels := make([]*panel.Panel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}

	return panels, nil
}
