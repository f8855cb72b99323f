package queries

import (
	"context"

	"gasfleet/internal/core/domain/services"
	"gasfleet/internal/core/ports"
)

// GetFleetUtilizationQueryHandler computes the fleet-wide utilization
// rollup for one date by building the daily schedules and aggregating them
// through the pure fleet scheduler.
type GetFleetUtilizationQueryHandler struct {
	truckRepo      ports.TruckRepository
	allocationRepo ports.AllocationRepository
	scheduler      services.FleetScheduler
}

// NewGetFleetUtilizationQueryHandler creates a handler for fleet utilization queries.
func NewGetFleetUtilizationQueryHandler(
	truckRepo ports.TruckRepository,
	allocationRepo ports.AllocationRepository,
) GetFleetUtilizationQueryHandler {
	return GetFleetUtilizationQueryHandler{
		truckRepo:      truckRepo,
		allocationRepo: allocationRepo,
		scheduler:      services.NewFleetScheduler(),
	}
}

// Handle executes the query and returns the fleet rollup.
func (h GetFleetUtilizationQueryHandler) Handle(
	ctx context.Context,
	query GetFleetUtilizationQuery,
) (services.FleetUtilizationSummary, error) {
	if err := query.Validate(); err != nil {
		return services.FleetUtilizationSummary{}, err
	}

	trucks, err := h.truckRepo.GetAll(ctx)
	if err != nil {
		return services.FleetUtilizationSummary{}, err
	}

	allocations, err := h.allocationRepo.GetAllForDate(ctx, query.Date())
	if err != nil {
		return services.FleetUtilizationSummary{}, err
	}

	schedules := h.scheduler.BuildDailySchedule(trucks, allocations, query.Date())
	return h.scheduler.ComputeFleetUtilization(schedules), nil
}
