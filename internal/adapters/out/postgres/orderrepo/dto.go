// Package orderrepo provides data transfer objects and mapping functions for
// manufacturing order persistence. This package implements the repository
// pattern for the order domain aggregate, handling the conversion between
// domain entities and database representations.
package orderrepo

import (
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status so the closure scan can cheaply list in-progress orders.
type OrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber            string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status                 int       `gorm:"type:int;not null;index"`
	TargetQuantity         int       `gorm:"type:int;not null"`
	CompletedCount         int       `gorm:"type:int;not null"`
	StartDate              time.Time `gorm:"not null"`
	ExpectedCompletionDate time.Time `gorm:"not null"`
	ActualCompletionDate   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		OrderNumber:            aggregate.OrderNumber(),
		Status:                 int(aggregate.Status()),
		TargetQuantity:         aggregate.TargetQuantity(),
		CompletedCount:         aggregate.CompletedCount(),
		StartDate:              aggregate.StartDate(),
		ExpectedCompletionDate: aggregate.ExpectedCompletionDate(),
		ActualCompletionDate:   aggregate.ActualCompletionDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and completion
// progress using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Status(dto.Status),
		dto.TargetQuantity,
		dto.CompletedCount,
		dto.StartDate,
		dto.ExpectedCompletionDate,
		dto.ActualCompletionDate,
	)
}
