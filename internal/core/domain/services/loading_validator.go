package services

import (
	"fmt"

	"gasfleet/internal/core/domain/model/truck"
)

// warningUtilizationPct is the weight utilization above which a passing load
// still draws an advisory warning.
const warningUtilizationPct = 90.0

// CapacityCheck exposes every intermediate figure of a loading validation so
// the caller can audit exactly how a verdict was reached.
type CapacityCheck struct {
	// CurrentCylinders is the cylinder count on board before loading.
	CurrentCylinders int
	// CurrentWeightKg is the on-board weight before loading.
	CurrentWeightKg float64
	// CylindersToAdd is the cylinder count of the proposed items.
	CylindersToAdd int
	// WeightToAddKg is the weight of the proposed items.
	WeightToAddKg float64
	// TotalCylindersAfter is the cylinder count after loading.
	TotalCylindersAfter int
	// TotalWeightAfterKg is the weight after loading.
	TotalWeightAfterKg float64
	// CylinderCapacity is the truck's cylinder-slot limit.
	CylinderCapacity int
	// WeightCapacityKg is the mass limit the check ran against. When the
	// truck has no explicit limit this is reconstructed from the slot count,
	// never treated as unlimited.
	WeightCapacityKg float64
	// CylinderOverflow is TotalCylindersAfter - CylinderCapacity (may be negative).
	CylinderOverflow int
	// WeightOverflowKg is TotalWeightAfterKg - WeightCapacityKg (may be negative).
	WeightOverflowKg float64
	// UtilizationAfterPct is the weight utilization after loading.
	UtilizationAfterPct float64
}

// LoadingResult is the structured verdict of a loading validation.
// IsValid is true iff Errors is empty; warnings never block.
type LoadingResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	Check    CapacityCheck
}

// LoadingValidator is the authoritative gate before a physical loading
// action is confirmed. It applies the two hard constraints (mass and
// cylinder-slot count) independently: a pass on one axis never offsets a
// failure on the other.
//
// Violations are returned as entries in the result's Errors list with the
// exact numeric shortfall embedded, not as Go errors, so batch UIs can show
// every problem at once. Callers must treat this check as final immediately
// before committing a load, regardless of what the allocation optimizer
// proposed earlier.
type LoadingValidator struct{}

// NewLoadingValidator creates a LoadingValidator.
func NewLoadingValidator() LoadingValidator {
	return LoadingValidator{}
}

// ValidateLoading checks whether the proposed items can be added to the
// truck. The truck is rejected outright when it is inactive or under
// maintenance. Pure function: it inspects the snapshot and proposal, it does
// not mutate the truck.
func (v LoadingValidator) ValidateLoading(tr *truck.Truck, items []truck.InventoryItem) LoadingResult {
	result := LoadingResult{}

	if !tr.IsActive() || tr.Status() == truck.StatusInactive {
		result.Errors = append(result.Errors,
			fmt.Sprintf("truck %s is inactive and cannot be loaded", tr.Plate()))
	}
	if tr.Status() == truck.StatusMaintenance {
		result.Errors = append(result.Errors,
			fmt.Sprintf("truck %s is under maintenance and cannot be loaded", tr.Plate()))
	}

	var cylindersToAdd int
	var weightToAddKg float64
	for _, item := range items {
		cylindersToAdd += item.Units()
		weightToAddKg += item.WeightKg()
	}

	check := CapacityCheck{
		CurrentCylinders: tr.InventoryUnits(),
		CurrentWeightKg:  tr.InventoryWeightKg(),
		CylindersToAdd:   cylindersToAdd,
		WeightToAddKg:    weightToAddKg,
		CylinderCapacity: tr.CapacityCylinders(),
		WeightCapacityKg: tr.EffectiveCapacityKg(),
	}
	check.TotalCylindersAfter = check.CurrentCylinders + check.CylindersToAdd
	check.TotalWeightAfterKg = check.CurrentWeightKg + check.WeightToAddKg
	check.CylinderOverflow = check.TotalCylindersAfter - check.CylinderCapacity
	check.WeightOverflowKg = check.TotalWeightAfterKg - check.WeightCapacityKg
	if check.WeightCapacityKg > 0 {
		check.UtilizationAfterPct = check.TotalWeightAfterKg / check.WeightCapacityKg * 100
	}
	result.Check = check

	if check.CylinderOverflow > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"cylinder capacity exceeded by %d units (%d after loading vs capacity %d)",
			check.CylinderOverflow, check.TotalCylindersAfter, check.CylinderCapacity))
	}
	if check.WeightOverflowKg > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"weight capacity exceeded by %.1f kg (%.1f kg after loading vs capacity %.1f kg)",
			check.WeightOverflowKg, check.TotalWeightAfterKg, check.WeightCapacityKg))
	}

	if len(result.Errors) == 0 && check.UtilizationAfterPct > warningUtilizationPct {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"truck will be %.1f%% utilized after loading", check.UtilizationAfterPct))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
