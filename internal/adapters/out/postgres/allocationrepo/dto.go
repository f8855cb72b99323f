// Package allocationrepo provides data transfer objects and mapping functions for
// allocation persistence. This package implements the repository pattern for the
// allocation domain aggregate, handling the conversion between domain entities
// and database representations.
package allocationrepo

import (
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AllocationDTO represents the database structure for persisting allocation aggregates.
type AllocationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TruckID  uuid.UUID `gorm:"type:uuid;not null;index:idx_allocations_truck_date"`
	Date     time.Time `gorm:"type:date;not null;index:idx_allocations_truck_date;index"`
	WeightKg float64   `gorm:"type:numeric;not null"`
	Status   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for allocation entities.
func (AllocationDTO) TableName() string {
	return "allocations"
}

// fromDomain converts an allocation domain aggregate to its database representation.
func fromDomain(aggregate *allocation.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		TruckID:  aggregate.TruckID().Bytes(),
		Date:     aggregate.Date(),
		WeightKg: aggregate.WeightKg(),
		Status:   int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an allocation domain aggregate.
func toDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(
		id,
		orderID,
		truckID,
		dto.Date,
		dto.WeightKg,
		allocation.Status(dto.Status),
	)
}
