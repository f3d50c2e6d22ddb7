// Package panelrepo provides data transfer objects and mapping functions for
// panel persistence. This package implements the repository pattern for the
// panel domain aggregate, handling the conversion between domain entities
// and database representations.
package panelrepo

import (
	"sort"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"

	"github.com/google/uuid"
)

// PanelDTO represents the database structure for persisting panel aggregates.
// Station passes live in a child table, one row per passed station, so the
// pass history keeps its per-station timestamps.
type PanelDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Barcode       string           `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	State         int              `gorm:"type:int;not null"`
	HoldReason    string           `gorm:"type:text;not null"`
	PowerWatts    *float64         `gorm:"type:numeric"`
	VoltageVolts  *float64         `gorm:"type:numeric"`
	CurrentAmps   *float64         `gorm:"type:numeric"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	StationPasses []StationPassDTO `gorm:"foreignKey:PanelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for panel entities.
// Overrides GORM's default naming convention to use "panels".
func (PanelDTO) TableName() string {
	return "panels"
}

// StationPassDTO represents one recorded station pass of a panel.
type StationPassDTO struct {
	PanelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ordinal  int       `gorm:"type:int;primaryKey"`
	PassedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for station pass entities.
// Overrides GORM's default naming convention to use "station_passes".
func (StationPassDTO) TableName() string {
	return "station_passes"
}

// fromDomain converts a panel domain aggregate to its database representation.
func fromDomain(aggregate *panel.Panel) PanelDTO {
	panelID := aggregate.ID().Bytes()

	passes := aggregate.StationPasses()
	passDTOs := make([]StationPassDTO, 0, len(passes))
	for i, at := range passes {
		passDTOs = append(passDTOs, StationPassDTO{
			PanelID:  panelID,
			Ordinal:  i + 1,
			PassedAt: at,
		})
	}

	var power, voltage, current *float64
	if m := aggregate.Measurements(); m != nil {
		p, v, c := m.PowerWatts(), m.VoltageVolts(), m.CurrentAmps()
		power, voltage, current = &p, &v, &c
	}

	return PanelDTO{
		ID:            panelID,
		Barcode:       aggregate.Barcode().String(),
		OrderID:       aggregate.OrderID().Bytes(),
		State:         int(aggregate.State()),
		HoldReason:    aggregate.HoldReason(),
		PowerWatts:    power,
		VoltageVolts:  voltage,
		CurrentAmps:   current,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		StationPasses: passDTOs,
	}
}

// toDomain converts a database DTO to a panel domain aggregate.
// Reconstructs the pass history in station order using RestorePanel.
func toDomain(dto PanelDTO) (*panel.Panel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.StationPasses, func(i, j int) bool {
		return dto.StationPasses[i].Ordinal < dto.StationPasses[j].Ordinal
	})
	passes := make([]time.Time, 0, len(dto.StationPasses))
	for _, p := range dto.StationPasses {
		passes = append(passes, p.PassedAt)
	}

	var measurements *panel.Measurements
	if dto.PowerWatts != nil && dto.VoltageVolts != nil && dto.CurrentAmps != nil {
		m, mErr := panel.NewMeasurements(*dto.PowerWatts, *dto.VoltageVolts, *dto.CurrentAmps)
		if mErr != nil {
			return nil, mErr
		}
		measurements = &m
	}

	return panel.RestorePanel(
		id,
		barcode,
		orderID,
		panel.State(dto.State),
		passes,
		measurements,
		dto.HoldReason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
