package services

import (
	"math"
	"sort"
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/truck"
)

// SelectorPolicy holds the tunable constants of the fit-score heuristic.
// Keeping them as named configuration rather than literals lets the
// allocation policy be adjusted (e.g. a different target utilization)
// without touching the algorithm.
type SelectorPolicy struct {
	// TargetUtilizationPct is where the fit score peaks.
	TargetUtilizationPct float64
	// HighUtilizationPct is the cutoff past which a flat penalty score applies.
	HighUtilizationPct float64
	// HighUtilizationScore is the flat score for trucks pushed past the cutoff.
	HighUtilizationScore float64
	// MaxScore is the score of a perfectly targeted assignment.
	MaxScore float64
	// RoutingBonusCap caps the routing-simplicity bonus; trucks earn
	// max(0, RoutingBonusCap - existing orders) extra points.
	RoutingBonusCap float64
}

// DefaultSelectorPolicy returns the production fit-score policy: a 75%
// utilization target, a flat 20-point score past 85%, and up to 10 bonus
// points for trucks with few existing stops.
func DefaultSelectorPolicy() SelectorPolicy {
	return SelectorPolicy{
		TargetUtilizationPct: 75,
		HighUtilizationPct:   85,
		HighUtilizationScore: 20,
		MaxScore:             100,
		RoutingBonusCap:      10,
	}
}

// TruckFit is one candidate truck's evaluation for an order.
type TruckFit struct {
	// Truck is the evaluated candidate.
	Truck *truck.Truck
	// Capacity is the truck's capacity snapshot for the date.
	Capacity CapacityInfo
	// CanAccommodate reports whether the available weight covers the order.
	CanAccommodate bool
	// FitScore ranks accommodable trucks; 0 for trucks that cannot take the order.
	FitScore float64
}

// SelectionResult is the outcome of ranking candidate trucks for one order.
type SelectionResult struct {
	// Ranked lists every eligible truck, best fit first. Ties keep the
	// original truck ordering (stable sort).
	Ranked []TruckFit
	// Best is the highest-scoring accommodable truck, nil when no eligible
	// truck can take the order.
	Best *TruckFit
}

// TruckSelector ranks active, non-maintenance trucks as candidates to
// receive one order of a given estimated weight for a target date.
//
// The fit score peaks at the policy's target utilization and decays linearly
// either side; trucks that would be pushed past the high-utilization cutoff
// get a flat penalty score instead. A routing-simplicity bonus favors trucks
// with few existing stops. Non-accommodable trucks score 0 and are never
// selected as best.
//
// Deterministic given its inputs. Note that two concurrent callers selecting
// against the same snapshot can pick the same truck; the commit path must
// serialize allocations per truck (see the command handlers).
type TruckSelector struct {
	calculator CapacityCalculator
	policy     SelectorPolicy
}

// NewTruckSelector creates a selector with the given policy.
func NewTruckSelector(policy SelectorPolicy) TruckSelector {
	return TruckSelector{
		calculator: NewCapacityCalculator(),
		policy:     policy,
	}
}

// SelectBestTruck evaluates every operational truck for an order of the
// given estimated weight on the target date, against the supplied allocation
// snapshot. Returns the full ranking and the best accommodable truck, if any.
func (s TruckSelector) SelectBestTruck(
	orderWeightKg float64,
	trucks []*truck.Truck,
	allocations []*allocation.Allocation,
	date time.Time,
) SelectionResult {
	result := SelectionResult{
		Ranked: make([]TruckFit, 0, len(trucks)),
	}

	for _, tr := range trucks {
		if tr == nil || !tr.IsOperational() {
			continue
		}

		capacity := s.calculator.ComputeTruckCapacity(tr, allocations, date)
		fit := TruckFit{
			Truck:          tr,
			Capacity:       capacity,
			CanAccommodate: capacity.AvailableKg >= orderWeightKg,
		}
		if fit.CanAccommodate {
			fit.FitScore = s.fitScore(capacity, orderWeightKg)
		}

		result.Ranked = append(result.Ranked, fit)
	}

	sort.SliceStable(result.Ranked, func(i, j int) bool {
		return result.Ranked[i].FitScore > result.Ranked[j].FitScore
	})

	for i := range result.Ranked {
		if result.Ranked[i].CanAccommodate {
			result.Best = &result.Ranked[i]
			break
		}
	}

	return result
}

// Policy returns the selector's fit-score policy.
func (s TruckSelector) Policy() SelectorPolicy {
	return s.policy
}

func (s TruckSelector) fitScore(capacity CapacityInfo, orderWeightKg float64) float64 {
	var utilizationAfter float64
	if capacity.CapacityKg > 0 {
		utilizationAfter = (capacity.AllocatedKg + orderWeightKg) / capacity.CapacityKg * 100
	}

	var score float64
	if utilizationAfter <= s.policy.HighUtilizationPct {
		score = s.policy.MaxScore - math.Abs(utilizationAfter-s.policy.TargetUtilizationPct)
	} else {
		score = s.policy.HighUtilizationScore
	}

	return score + max(0, s.policy.RoutingBonusCap-float64(capacity.OrdersCount))
}
