package services

import (
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
)

const (
	// estimatedKmPerStop is the rough distance budget per delivery stop used
	// by the fuel feasibility estimate.
	estimatedKmPerStop = 25.0
	// usableTankFraction is the share of the tank the fuel estimate allows a
	// day's route to consume.
	usableTankFraction = 0.8
)

// DailySchedule is the derived per-truck view for one date: its allocations,
// capacity snapshot, and maintenance/fuel feasibility flags.
type DailySchedule struct {
	// Truck is the scheduled truck.
	Truck *truck.Truck
	// Date is the covered calendar date.
	Date time.Time
	// Allocations are the truck's non-cancelled allocations for the date.
	Allocations []*allocation.Allocation
	// Capacity is the truck's capacity snapshot for the date.
	Capacity CapacityInfo
	// MaintenanceDue reports whether maintenance falls due on or before the date.
	MaintenanceDue bool
	// FuelSufficient reports whether the estimated route fits in the usable tank.
	FuelSufficient bool
}

// FleetUtilizationSummary is the fleet-wide rollup over a set of daily
// schedules, restricted to active non-maintenance trucks.
type FleetUtilizationSummary struct {
	// TotalCapacityKg is the summed mass capacity of the counted trucks.
	TotalCapacityKg float64
	// TotalAllocatedKg is the summed allocated weight of the counted trucks.
	TotalAllocatedKg float64
	// UtilizationPct is TotalAllocatedKg / TotalCapacityKg x 100.
	UtilizationPct float64
	// ActiveTrucks is the number of counted trucks.
	ActiveTrucks int
	// OverallocatedTrucks is how many counted trucks exceed their capacity.
	OverallocatedTrucks int
	// MaintenanceDueTrucks is how many counted trucks have maintenance due.
	MaintenanceDueTrucks int
}

// FleetScheduler assembles per-truck daily schedules and the fleet-wide
// utilization rollup. Pure aggregation with no side effects.
type FleetScheduler struct {
	calculator CapacityCalculator
}

// NewFleetScheduler creates a FleetScheduler.
func NewFleetScheduler() FleetScheduler {
	return FleetScheduler{
		calculator: NewCapacityCalculator(),
	}
}

// BuildDailySchedule produces the daily view for every truck in the
// snapshot, including inactive and maintenance trucks (their schedules show
// why they carry nothing; the fleet rollup excludes them).
func (s FleetScheduler) BuildDailySchedule(
	trucks []*truck.Truck,
	allocations []*allocation.Allocation,
	date time.Time,
) []DailySchedule {
	schedules := make([]DailySchedule, 0, len(trucks))

	for _, tr := range trucks {
		if tr == nil {
			continue
		}

		var truckAllocations []*allocation.Allocation
		for _, a := range allocations {
			if a != nil && a.IsFor(tr.ID(), date) && a.CountsTowardCapacity() {
				truckAllocations = append(truckAllocations, a)
			}
		}

		capacity := s.calculator.ComputeTruckCapacity(tr, allocations, date)

		schedules = append(schedules, DailySchedule{
			Truck:          tr,
			Date:           kernel.DateOnly(date),
			Allocations:    truckAllocations,
			Capacity:       capacity,
			MaintenanceDue: maintenanceDue(tr, date),
			FuelSufficient: fuelSufficient(tr, len(truckAllocations)),
		})
	}

	return schedules
}

// ComputeFleetUtilization aggregates schedules into the fleet-wide rollup.
// Only active, non-maintenance trucks count toward capacity and utilization.
func (s FleetScheduler) ComputeFleetUtilization(schedules []DailySchedule) FleetUtilizationSummary {
	summary := FleetUtilizationSummary{}

	for _, schedule := range schedules {
		if schedule.Truck == nil || !schedule.Truck.IsOperational() {
			continue
		}

		summary.ActiveTrucks++
		summary.TotalCapacityKg += schedule.Capacity.CapacityKg
		summary.TotalAllocatedKg += schedule.Capacity.AllocatedKg
		if schedule.Capacity.IsOverallocated {
			summary.OverallocatedTrucks++
		}
		if schedule.MaintenanceDue {
			summary.MaintenanceDueTrucks++
		}
	}

	if summary.TotalCapacityKg > 0 {
		summary.UtilizationPct = summary.TotalAllocatedKg / summary.TotalCapacityKg * 100
	}

	return summary
}

func maintenanceDue(tr *truck.Truck, date time.Time) bool {
	due := tr.NextMaintenanceDate()
	return due != nil && !kernel.DateOnly(*due).After(kernel.DateOnly(date))
}

// fuelSufficient estimates whether the day's route fits in the usable tank:
// estimatedKmPerStop per delivery against the truck's average consumption
// and usableTankFraction of its tank.
func fuelSufficient(tr *truck.Truck, stops int) bool {
	if stops == 0 {
		return true
	}

	estimatedKm := estimatedKmPerStop * float64(stops)
	litersNeeded := estimatedKm * tr.FuelConsumptionLPer100Km() / 100

	return litersNeeded <= tr.FuelTankLiters()*usableTankFraction
}
