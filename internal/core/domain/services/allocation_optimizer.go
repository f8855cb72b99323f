package services

import (
	"sort"
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"
	"gasfleet/internal/core/domain/model/truck"
)

// OptimizedAllocation is one proposed assignment from an optimizer run.
type OptimizedAllocation struct {
	// Allocation is the proposed planned allocation.
	Allocation *allocation.Allocation
	// Confidence is the fit score of the chosen truck at the moment of
	// assignment, exposing how comfortable the placement was.
	Confidence float64
}

// OptimizationSummary aggregates an optimizer run.
type OptimizationSummary struct {
	// TotalOrders is the number of orders submitted to the run.
	TotalOrders int
	// AllocatedOrders is the number of orders that found a truck.
	AllocatedOrders int
	// FleetUtilizationPct is the fleet-wide utilization after the run,
	// computed over active non-maintenance trucks.
	FleetUtilizationPct float64
}

// OptimizationResult is the advisory output of a batch optimization pass.
// It proposes allocations for the caller to persist; nothing is committed by
// the optimizer itself.
type OptimizationResult struct {
	Allocations []OptimizedAllocation
	Unallocated []kernel.UUID
	Summary     OptimizationSummary
}

// AllocationOptimizer batch-assigns orders to trucks for one date using a
// first-fit-decreasing pass: orders are sorted by estimated weight
// descending (heaviest first, reducing fragmentation) and each is placed on
// the best-fitting truck given all placements made earlier in the same run.
//
// The running allocation list is seeded with the date's already-committed
// allocations and grows with every assignment, so each decision accounts
// both for earlier runs and for all prior decisions in this pass; the
// trucks' on-board inventory still weighs in through the capacity
// calculator's max() reconciliation. One invocation is race-free because
// orders are processed sequentially; races only arise between independent
// invocations committing against the same truck, which the command layer
// serializes.
type AllocationOptimizer struct {
	selector  TruckSelector
	scheduler FleetScheduler
}

// NewAllocationOptimizer creates an optimizer using the given selector policy.
func NewAllocationOptimizer(policy SelectorPolicy) AllocationOptimizer {
	return AllocationOptimizer{
		selector:  NewTruckSelector(policy),
		scheduler: NewFleetScheduler(),
	}
}

// OptimizeAllocations proposes planned allocations for the given orders on
// the target date. orderWeights maps each order to its estimated weight (see
// WeightEstimator); orders without a weight entry are reported unallocated.
// existing holds the date's already-committed allocations; they pre-load
// every truck's running total so a repeated run for the same date never
// assigns weight a previous run already claimed (cancelled allocations are
// ignored by the capacity calculator). An empty order list with no existing
// allocations yields empty allocations, an empty unallocated list and zero
// utilization.
func (o AllocationOptimizer) OptimizeAllocations(
	orders []*order.Order,
	orderWeights map[kernel.UUID]float64,
	trucks []*truck.Truck,
	existing []*allocation.Allocation,
	date time.Time,
) OptimizationResult {
	result := OptimizationResult{
		Allocations: make([]OptimizedAllocation, 0, len(orders)),
		Unallocated: make([]kernel.UUID, 0),
		Summary: OptimizationSummary{
			TotalOrders: len(orders),
		},
	}

	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderWeights[sorted[i].ID()] > orderWeights[sorted[j].ID()]
	})

	running := make([]*allocation.Allocation, 0, len(existing)+len(orders))
	running = append(running, existing...)

	for _, ord := range sorted {
		weightKg, ok := orderWeights[ord.ID()]
		if !ok || weightKg <= 0 {
			result.Unallocated = append(result.Unallocated, ord.ID())
			continue
		}

		selection := o.selector.SelectBestTruck(weightKg, trucks, running, date)
		if selection.Best == nil {
			result.Unallocated = append(result.Unallocated, ord.ID())
			continue
		}

		alloc, err := allocation.NewAllocation(
			kernel.NewUUID(),
			ord.ID(),
			selection.Best.Truck.ID(),
			date,
			weightKg,
		)
		if err != nil {
			result.Unallocated = append(result.Unallocated, ord.ID())
			continue
		}

		running = append(running, alloc)
		result.Allocations = append(result.Allocations, OptimizedAllocation{
			Allocation: alloc,
			Confidence: selection.Best.FitScore,
		})
		result.Summary.AllocatedOrders++
	}

	schedules := o.scheduler.BuildDailySchedule(trucks, running, date)
	result.Summary.FleetUtilizationPct = o.scheduler.ComputeFleetUtilization(schedules).UtilizationPct

	return result
}
