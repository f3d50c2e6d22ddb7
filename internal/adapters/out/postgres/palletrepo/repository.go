package palletrepo

import (
	"context"
	"errors"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/pallet"
	"paneltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPalletRepository implements PalletRepository using GORM.
type GormPalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPalletRepository creates a new GORM pallet repository.
func NewGormPalletRepository(db *gorm.DB, tracker aggregateTracker) *GormPalletRepository {
	return &GormPalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pallet to the database.
func (r *GormPalletRepository) Add(ctx context.Context, aggregate *pallet.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pallet to the database.
func (r *GormPalletRepository) Update(ctx context.Context, aggregate *pallet.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update assignments
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pallet by ID.
func (r *GormPalletRepository) Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PalletDTO
	if err := r.db.WithContext(ctx).Preload("Panels").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pallet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every pallet belonging to an order.
func (r *GormPalletRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*pallet.Pallet, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PalletDTO
	if err := r.db.WithContext(ctx).Preload("Panels").
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	pallets := make([]*pallet.Pallet, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pallets = append(pallets, p)
	}

	return pallets, nil
}
