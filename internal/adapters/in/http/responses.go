package http

import (
	"gasfleet/internal/core/domain/services"
)

// AllocationEntry is one proposed allocation in a planning response.
type AllocationEntry struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	TruckID    string  `json:"truck_id"`
	Date       string  `json:"date"`
	WeightKg   float64 `json:"weight_kg"`
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
}

// OptimizationResponse is the payload of a planning run.
type OptimizationResponse struct {
	Allocations         []AllocationEntry `json:"allocations"`
	Unallocated         []string          `json:"unallocated"`
	TotalOrders         int               `json:"total_orders"`
	AllocatedOrders     int               `json:"allocated_orders"`
	FleetUtilizationPct float64           `json:"fleet_utilization_pct"`
}

// CapacityResponse is the capacity snapshot payload for one truck and date.
type CapacityResponse struct {
	TruckID         string  `json:"truck_id"`
	Date            string  `json:"date"`
	CapacityKg      float64 `json:"capacity_kg"`
	AllocatedKg     float64 `json:"allocated_kg"`
	AvailableKg     float64 `json:"available_kg"`
	UtilizationPct  float64 `json:"utilization_pct"`
	OrdersCount     int     `json:"orders_count"`
	IsOverallocated bool    `json:"is_overallocated"`
}

// CapacityCheckResponse exposes the intermediate figures of a loading validation.
type CapacityCheckResponse struct {
	CurrentCylinders    int     `json:"current_cylinders"`
	CurrentWeightKg     float64 `json:"current_weight_kg"`
	CylindersToAdd      int     `json:"cylinders_to_add"`
	WeightToAddKg       float64 `json:"weight_to_add_kg"`
	TotalCylindersAfter int     `json:"total_cylinders_after"`
	TotalWeightAfterKg  float64 `json:"total_weight_after_kg"`
	CylinderCapacity    int     `json:"cylinder_capacity"`
	WeightCapacityKg    float64 `json:"weight_capacity_kg"`
	CylinderOverflow    int     `json:"cylinder_overflow"`
	WeightOverflowKg    float64 `json:"weight_overflow_kg"`
	UtilizationAfterPct float64 `json:"utilization_after_pct"`
}

// LoadingResponse is the structured verdict payload of a loading confirmation.
type LoadingResponse struct {
	IsValid  bool                  `json:"is_valid"`
	Errors   []string              `json:"errors"`
	Warnings []string              `json:"warnings"`
	Check    CapacityCheckResponse `json:"check"`
}

// ScheduleEntry is one truck's row in the daily schedule payload.
type ScheduleEntry struct {
	TruckID        string            `json:"truck_id"`
	Plate          string            `json:"plate"`
	Status         string            `json:"status"`
	Capacity       CapacityResponse  `json:"capacity"`
	Allocations    []AllocationEntry `json:"allocations"`
	MaintenanceDue bool              `json:"maintenance_due"`
	FuelSufficient bool              `json:"fuel_sufficient"`
}

// UtilizationResponse is the fleet-wide rollup payload.
type UtilizationResponse struct {
	TotalCapacityKg      float64 `json:"total_capacity_kg"`
	TotalAllocatedKg     float64 `json:"total_allocated_kg"`
	UtilizationPct       float64 `json:"utilization_pct"`
	ActiveTrucks         int     `json:"active_trucks"`
	OverallocatedTrucks  int     `json:"overallocated_trucks"`
	MaintenanceDueTrucks int     `json:"maintenance_due_trucks"`
}

// UnallocatedOrder is one waiting order in the unallocated orders payload.
type UnallocatedOrder struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	DeliveryDate string `json:"delivery_date"`
	LinesCount   int    `json:"lines_count"`
}

func toOptimizationResponse(result services.OptimizationResult) OptimizationResponse {
	allocations := make([]AllocationEntry, len(result.Allocations))
	for i, proposed := range result.Allocations {
		a := proposed.Allocation
		allocations[i] = AllocationEntry{
			ID:         a.ID().String(),
			OrderID:    a.OrderID().String(),
			TruckID:    a.TruckID().String(),
			Date:       a.Date().Format(dateLayout),
			WeightKg:   a.WeightKg(),
			Status:     a.Status().String(),
			Confidence: proposed.Confidence,
		}
	}

	unallocated := make([]string, len(result.Unallocated))
	for i, id := range result.Unallocated {
		unallocated[i] = id.String()
	}

	return OptimizationResponse{
		Allocations:         allocations,
		Unallocated:         unallocated,
		TotalOrders:         result.Summary.TotalOrders,
		AllocatedOrders:     result.Summary.AllocatedOrders,
		FleetUtilizationPct: result.Summary.FleetUtilizationPct,
	}
}

func toCapacityResponse(info services.CapacityInfo) CapacityResponse {
	return CapacityResponse{
		TruckID:         info.TruckID.String(),
		Date:            info.Date.Format(dateLayout),
		CapacityKg:      info.CapacityKg,
		AllocatedKg:     info.AllocatedKg,
		AvailableKg:     info.AvailableKg,
		UtilizationPct:  info.UtilizationPct,
		OrdersCount:     info.OrdersCount,
		IsOverallocated: info.IsOverallocated,
	}
}

func toLoadingResponse(result services.LoadingResult) LoadingResponse {
	return LoadingResponse{
		IsValid:  result.IsValid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Check: CapacityCheckResponse{
			CurrentCylinders:    result.Check.CurrentCylinders,
			CurrentWeightKg:     result.Check.CurrentWeightKg,
			CylindersToAdd:      result.Check.CylindersToAdd,
			WeightToAddKg:       result.Check.WeightToAddKg,
			TotalCylindersAfter: result.Check.TotalCylindersAfter,
			TotalWeightAfterKg:  result.Check.TotalWeightAfterKg,
			CylinderCapacity:    result.Check.CylinderCapacity,
			WeightCapacityKg:    result.Check.WeightCapacityKg,
			CylinderOverflow:    result.Check.CylinderOverflow,
			WeightOverflowKg:    result.Check.WeightOverflowKg,
			UtilizationAfterPct: result.Check.UtilizationAfterPct,
		},
	}
}

func toScheduleEntry(schedule services.DailySchedule) ScheduleEntry {
	allocations := make([]AllocationEntry, len(schedule.Allocations))
	for i, a := range schedule.Allocations {
		allocations[i] = AllocationEntry{
			ID:       a.ID().String(),
			OrderID:  a.OrderID().String(),
			TruckID:  a.TruckID().String(),
			Date:     a.Date().Format(dateLayout),
			WeightKg: a.WeightKg(),
			Status:   a.Status().String(),
		}
	}

	return ScheduleEntry{
		TruckID:        schedule.Truck.ID().String(),
		Plate:          schedule.Truck.Plate(),
		Status:         schedule.Truck.Status().String(),
		Capacity:       toCapacityResponse(schedule.Capacity),
		Allocations:    allocations,
		MaintenanceDue: schedule.MaintenanceDue,
		FuelSufficient: schedule.FuelSufficient,
	}
}

func toUtilizationResponse(summary services.FleetUtilizationSummary) UtilizationResponse {
	return UtilizationResponse{
		TotalCapacityKg:      summary.TotalCapacityKg,
		TotalAllocatedKg:     summary.TotalAllocatedKg,
		UtilizationPct:       summary.UtilizationPct,
		ActiveTrucks:         summary.ActiveTrucks,
		OverallocatedTrucks:  summary.OverallocatedTrucks,
		MaintenanceDueTrucks: summary.MaintenanceDueTrucks,
	}
}
