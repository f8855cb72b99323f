package ports

import (
	"context"
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for allocation
// aggregates. Allocations are the capacity ledger: every capacity figure is
// derived from the non-cancelled allocations of one truck and date.
type AllocationRepository interface {
	// Add persists a new allocation aggregate to storage.
	Add(ctx context.Context, aggregate *allocation.Allocation) error

	// Update persists changes to an existing allocation aggregate.
	Update(ctx context.Context, aggregate *allocation.Allocation) error

	// Get retrieves an allocation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// GetAllForDate retrieves every allocation for the given calendar date
	// across the whole fleet, including cancelled ones. Callers filter with
	// CountsTowardCapacity where cancelled allocations must not weigh in.
	GetAllForDate(ctx context.Context, date time.Time) ([]*allocation.Allocation, error)

	// GetAllForTruckAndDate retrieves every allocation of one truck for the
	// given calendar date, including cancelled ones.
	GetAllForTruckAndDate(ctx context.Context, truckID kernel.UUID, date time.Time) ([]*allocation.Allocation, error)
}
