package queries

import (
	"context"

	"gasfleet/internal/core/domain/services"
	"gasfleet/internal/core/ports"
)

// GetDailyScheduleQueryHandler assembles the fleet's daily schedule view.
// It loads the full fleet snapshot and the date's allocations, then defers
// to the pure fleet scheduler.
type GetDailyScheduleQueryHandler struct {
	truckRepo      ports.TruckRepository
	allocationRepo ports.AllocationRepository
	scheduler      services.FleetScheduler
}

// NewGetDailyScheduleQueryHandler creates a handler for daily schedule queries.
func NewGetDailyScheduleQueryHandler(
	truckRepo ports.TruckRepository,
	allocationRepo ports.AllocationRepository,
) GetDailyScheduleQueryHandler {
	return GetDailyScheduleQueryHandler{
		truckRepo:      truckRepo,
		allocationRepo: allocationRepo,
		scheduler:      services.NewFleetScheduler(),
	}
}

// Handle executes the query and returns one schedule per truck in the fleet.
func (h GetDailyScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetDailyScheduleQuery,
) ([]services.DailySchedule, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks, err := h.truckRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	allocations, err := h.allocationRepo.GetAllForDate(ctx, query.Date())
	if err != nil {
		return nil, err
	}

	return h.scheduler.BuildDailySchedule(trucks, allocations, query.Date()), nil
}
