// Package auditrepo provides data transfer objects and mapping functions
// for the closure audit trail. The store is append-only; records are never
// updated or deleted, rollbacks are compensating rows.
package auditrepo

import (
	"time"

	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ClosureRecordDTO represents the database structure for persisting closure
// audit records. The statistics snapshot is flattened into snapshot_ columns
// so the trail stays queryable without JSON unpacking.
type ClosureRecordDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	Kind             int         `gorm:"type:int;not null"`
	ActorID          uuid.UUID   `gorm:"type:uuid;not null"`
	Forced           bool        `gorm:"not null"`
	RuleVersion      int         `gorm:"type:int;not null"`
	PriorStatus      int         `gorm:"type:int;not null"`
	Reason           string      `gorm:"type:text;not null"`
	ReversesRecordID *uuid.UUID  `gorm:"type:uuid;index"`
	Snapshot         SnapshotDTO `gorm:"embedded;embeddedPrefix:snapshot_"`
	CreatedAt        time.Time   `gorm:"not null;index"`
}

// TableName specifies the database table name for closure record entities.
// Overrides GORM's default naming convention to use "closure_records".
func (ClosureRecordDTO) TableName() string {
	return "closure_records"
}

// SnapshotDTO represents the embedded statistics snapshot within the
// closure record table. Captures what the order looked like at the moment
// of closure or rollback.
type SnapshotDTO struct {
	OrderID              string  `gorm:"type:varchar(64);not null"`
	OrderNumber          string  `gorm:"type:varchar(64);not null"`
	TargetQuantity       int     `gorm:"type:int;not null"`
	ScannedPanels        int     `gorm:"type:int;not null"`
	CompletedPanels      int     `gorm:"type:int;not null"`
	InProgressPanels     int     `gorm:"type:int;not null"`
	PendingPanels        int     `gorm:"type:int;not null"`
	FailedPanels         int     `gorm:"type:int;not null"`
	CompletionPercent    float64 `gorm:"type:numeric;not null"`
	FailureRatePercent   float64 `gorm:"type:numeric;not null"`
	AvgProcessingSeconds float64 `gorm:"type:numeric;not null"`
	LastActivityAt       *time.Time
	ComputedAt           time.Time `gorm:"not null"`
}

// fromDomain converts a closure record to its database representation.
func fromDomain(record *audit.ClosureRecord) ClosureRecordDTO {
	var reverses *uuid.UUID
	if id := record.ReversesRecordID(); id != nil {
		raw := id.Bytes()
		reverses = &raw
	}

	snapshot := record.Snapshot()

	return ClosureRecordDTO{
		ID:               record.ID().Bytes(),
		OrderID:          record.OrderID().Bytes(),
		Kind:             int(record.Kind()),
		ActorID:          record.Actor().Bytes(),
		Forced:           record.Forced(),
		RuleVersion:      record.RuleVersion(),
		PriorStatus:      int(record.PriorStatus()),
		Reason:           record.Reason(),
		ReversesRecordID: reverses,
		Snapshot: SnapshotDTO{
			OrderID:              snapshot.OrderID,
			OrderNumber:          snapshot.OrderNumber,
			TargetQuantity:       snapshot.TargetQuantity,
			ScannedPanels:        snapshot.ScannedPanels,
			CompletedPanels:      snapshot.CompletedPanels,
			InProgressPanels:     snapshot.InProgressPanels,
			PendingPanels:        snapshot.PendingPanels,
			FailedPanels:         snapshot.FailedPanels,
			CompletionPercent:    snapshot.CompletionPercent,
			FailureRatePercent:   snapshot.FailureRatePercent,
			AvgProcessingSeconds: snapshot.AvgProcessingSeconds,
			LastActivityAt:       snapshot.LastActivityAt,
			ComputedAt:           snapshot.ComputedAt,
		},
		CreatedAt: record.CreatedAt(),
	}
}

// toDomain converts a database DTO to a closure record using
// RestoreClosureRecord.
func toDomain(dto ClosureRecordDTO) (*audit.ClosureRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	actor, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var reverses *kernel.UUID
	if dto.ReversesRecordID != nil {
		reversed, rErr := kernel.UUIDFromBytes((*dto.ReversesRecordID)[:])
		if rErr != nil {
			return nil, rErr
		}
		reverses = &reversed
	}

	snapshot := order.Statistics{
		OrderID:              dto.Snapshot.OrderID,
		OrderNumber:          dto.Snapshot.OrderNumber,
		TargetQuantity:       dto.Snapshot.TargetQuantity,
		ScannedPanels:        dto.Snapshot.ScannedPanels,
		CompletedPanels:      dto.Snapshot.CompletedPanels,
		InProgressPanels:     dto.Snapshot.InProgressPanels,
		PendingPanels:        dto.Snapshot.PendingPanels,
		FailedPanels:         dto.Snapshot.FailedPanels,
		CompletionPercent:    dto.Snapshot.CompletionPercent,
		FailureRatePercent:   dto.Snapshot.FailureRatePercent,
		AvgProcessingSeconds: dto.Snapshot.AvgProcessingSeconds,
		LastActivityAt:       dto.Snapshot.LastActivityAt,
		ComputedAt:           dto.Snapshot.ComputedAt,
	}

	return audit.RestoreClosureRecord(
		id,
		orderID,
		audit.Kind(dto.Kind),
		actor,
		dto.Forced,
		dto.RuleVersion,
		order.Status(dto.PriorStatus),
		dto.Reason,
		reverses,
		snapshot,
		dto.CreatedAt,
	)
}
