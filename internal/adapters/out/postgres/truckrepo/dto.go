// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
// This package implements the repository pattern for the truck domain aggregate, handling
// the conversion between domain entities and database representations.
package truckrepo

import (
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// Maps truck domain entities to relational database tables with the on-board
// inventory as a child table.
type TruckDTO struct {
	ID                       uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Plate                    string             `gorm:"type:varchar(32);not null"`
	IsActive                 bool               `gorm:"type:boolean;not null"`
	Status                   int                `gorm:"type:int;not null"`
	CapacityCylinders        int                `gorm:"type:int;not null"`
	CapacityKg               float64            `gorm:"type:numeric;not null"`
	NextMaintenanceDate      *time.Time         `gorm:"type:date"`
	FuelTankLiters           float64            `gorm:"type:numeric;not null"`
	FuelConsumptionLPer100Km float64            `gorm:"type:numeric;not null"`
	Inventory                []InventoryItemDTO `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for truck entities.
// Overrides GORM's default naming convention to use "trucks" instead of "truck_dtos".
func (TruckDTO) TableName() string {
	return "trucks"
}

// InventoryItemDTO represents one product's cylinders on board a truck.
// Keyed by truck and product since a truck carries at most one row per product.
type InventoryItemDTO struct {
	TruckID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	QtyFull   int       `gorm:"type:int;not null"`
	QtyEmpty  int       `gorm:"type:int;not null"`
	WeightKg  *float64  `gorm:"type:numeric"`
}

// TableName specifies the database table name for on-board inventory rows.
func (InventoryItemDTO) TableName() string {
	return "truck_inventory"
}

// fromDomain converts a truck domain aggregate to its database representation.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	truckID := aggregate.ID().Bytes()
	inventory := make([]InventoryItemDTO, 0, len(aggregate.Inventory()))

	for _, item := range aggregate.Inventory() {
		inventory = append(inventory, InventoryItemDTO{
			TruckID:   truckID,
			ProductID: item.ProductID().Bytes(),
			QtyFull:   item.QtyFull(),
			QtyEmpty:  item.QtyEmpty(),
			WeightKg:  item.MeasuredWeightKg(),
		})
	}

	return TruckDTO{
		ID:                       truckID,
		Plate:                    aggregate.Plate(),
		IsActive:                 aggregate.IsActive(),
		Status:                   int(aggregate.Status()),
		CapacityCylinders:        aggregate.CapacityCylinders(),
		CapacityKg:               aggregate.CapacityKg(),
		NextMaintenanceDate:      aggregate.NextMaintenanceDate(),
		FuelTankLiters:           aggregate.FuelTankLiters(),
		FuelConsumptionLPer100Km: aggregate.FuelConsumptionLPer100Km(),
		Inventory:                inventory,
	}
}

// toDomain converts a database DTO to a truck domain aggregate.
// Reconstructs the complete aggregate including its inventory using RestoreTruck.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	inventory := make([]truck.InventoryItem, 0, len(dto.Inventory))
	for _, itemDto := range dto.Inventory {
		item, itemErr := inventoryItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		inventory = append(inventory, item)
	}

	return truck.RestoreTruck(
		id,
		dto.Plate,
		dto.IsActive,
		truck.Status(dto.Status),
		dto.CapacityCylinders,
		dto.CapacityKg,
		dto.NextMaintenanceDate,
		dto.FuelTankLiters,
		dto.FuelConsumptionLPer100Km,
		inventory,
	)
}

// inventoryItemToDomain converts an inventory row to its domain value object.
func inventoryItemToDomain(dto InventoryItemDTO) (truck.InventoryItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return truck.InventoryItem{}, err
	}

	return truck.NewInventoryItem(productID, dto.QtyFull, dto.QtyEmpty, dto.WeightKg)
}
