// Package ports defines repository interfaces for the fleet capacity domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
// Provides methods for storing, retrieving, and querying trucks with their
// complete state including on-board inventory.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// The truck must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	// The truck must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	// Returns the complete truck with its on-board inventory.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetForUpdate retrieves a truck and locks its row for the duration of
	// the surrounding transaction. Commit paths that validate against the
	// truck's current load must read through this method so concurrent
	// decisions against the same truck queue up instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAll retrieves every truck in the fleet, active or not.
	// Planning reads the whole fleet snapshot; schedules show inactive
	// trucks alongside active ones.
	GetAll(ctx context.Context) ([]*truck.Truck, error)

	// GetAllForUpdate retrieves the whole fleet with every truck row locked
	// for the duration of the surrounding transaction. Used by batch commit
	// paths that assign load across the fleet.
	GetAllForUpdate(ctx context.Context) ([]*truck.Truck, error)
}
