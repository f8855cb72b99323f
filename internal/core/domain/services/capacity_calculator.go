package services

import (
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
)

// CapacityInfo is a derived, non-persisted capacity snapshot for one
// (truck, date). It is recomputed from the caller's snapshot on every query
// and never cached or stored, to avoid staleness.
//
// Invariants:
//   - AllocatedKg = max(summed non-cancelled allocation weight, measured
//     on-board inventory weight): the conservative reconciliation of "what
//     we planned" with "what is physically loaded"
//   - AvailableKg = max(0, CapacityKg - AllocatedKg); never negative
//   - IsOverallocated = AllocatedKg > CapacityKg
type CapacityInfo struct {
	// TruckID identifies the truck the snapshot was computed for.
	TruckID kernel.UUID
	// Date is the calendar date the snapshot covers.
	Date time.Time
	// CapacityKg is the truck's configured mass limit (0 when unset).
	CapacityKg float64
	// AllocatedKg is the weight charged against the truck for the date.
	AllocatedKg float64
	// AvailableKg is the remaining mass capacity, never negative.
	AvailableKg float64
	// UtilizationPct is AllocatedKg / CapacityKg x 100 (0 when CapacityKg <= 0).
	UtilizationPct float64
	// OrdersCount is the number of non-cancelled allocations for the date.
	OrdersCount int
	// IsOverallocated reports whether AllocatedKg exceeds CapacityKg.
	IsOverallocated bool
}

// CapacityCalculator computes the authoritative capacity snapshot for a
// truck and date from the caller-supplied allocation set and the truck's
// on-board inventory. Pure function of its inputs: no I/O, deterministic,
// never fails. A truck without a configured mass limit yields 0%
// utilization rather than a division error.
type CapacityCalculator struct{}

// NewCapacityCalculator creates a CapacityCalculator.
func NewCapacityCalculator() CapacityCalculator {
	return CapacityCalculator{}
}

// ComputeTruckCapacity derives the CapacityInfo for (truck, date).
// Allocations for other trucks or dates, and cancelled allocations, are
// ignored. The allocated figure is the maximum of the planned allocation sum
// and the measured on-board inventory weight, so a truck is never reported
// with more free capacity than it physically has.
func (c CapacityCalculator) ComputeTruckCapacity(
	tr *truck.Truck,
	allocations []*allocation.Allocation,
	date time.Time,
) CapacityInfo {
	var allocationKg float64
	var ordersCount int
	for _, a := range allocations {
		if a == nil || !a.IsFor(tr.ID(), date) || !a.CountsTowardCapacity() {
			continue
		}
		allocationKg += a.WeightKg()
		ordersCount++
	}

	allocatedKg := max(allocationKg, tr.InventoryWeightKg())

	capacityKg := tr.CapacityKg()
	availableKg := max(0, capacityKg-allocatedKg)

	var utilizationPct float64
	if capacityKg > 0 {
		utilizationPct = allocatedKg / capacityKg * 100
	}

	return CapacityInfo{
		TruckID:         tr.ID(),
		Date:            kernel.DateOnly(date),
		CapacityKg:      capacityKg,
		AllocatedKg:     allocatedKg,
		AvailableKg:     availableKg,
		UtilizationPct:  utilizationPct,
		OrdersCount:     ordersCount,
		IsOverallocated: allocatedKg > capacityKg,
	}
}
