package queries

import (
	"context"

	"gasfleet/internal/core/domain/services"
	"gasfleet/internal/core/ports"
)

// GetTruckCapacityQueryHandler reads one truck's capacity snapshot. It loads
// the truck and its allocations for the date and hands them to the pure
// capacity calculator; the read side never computes capacity arithmetic of
// its own.
type GetTruckCapacityQueryHandler struct {
	truckRepo      ports.TruckRepository
	allocationRepo ports.AllocationRepository
	calculator     services.CapacityCalculator
}

// NewGetTruckCapacityQueryHandler creates a handler for truck capacity queries.
func NewGetTruckCapacityQueryHandler(
	truckRepo ports.TruckRepository,
	allocationRepo ports.AllocationRepository,
) GetTruckCapacityQueryHandler {
	return GetTruckCapacityQueryHandler{
		truckRepo:      truckRepo,
		allocationRepo: allocationRepo,
		calculator:     services.NewCapacityCalculator(),
	}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// truck does not exist.
func (h GetTruckCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetTruckCapacityQuery,
) (services.CapacityInfo, error) {
	if err := query.Validate(); err != nil {
		return services.CapacityInfo{}, err
	}

	aggregate, err := h.truckRepo.Get(ctx, query.TruckID())
	if err != nil {
		return services.CapacityInfo{}, err
	}

	allocations, err := h.allocationRepo.GetAllForTruckAndDate(ctx, query.TruckID(), query.Date())
	if err != nil {
		return services.CapacityInfo{}, err
	}

	return h.calculator.ComputeTruckCapacity(aggregate, allocations, query.Date()), nil
}
