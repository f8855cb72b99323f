package services

import (
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"
	"gasfleet/internal/core/domain/model/product"
)

// LineWeight is the per-line breakdown of a weight estimate.
type LineWeight struct {
	// LineID identifies the estimated order line.
	LineID kernel.UUID
	// ProductID identifies the line's product.
	ProductID kernel.UUID
	// Quantity is the line's unit count.
	Quantity int
	// UnitKg is the estimated weight of one unit.
	UnitKg float64
	// TotalKg is UnitKg x Quantity.
	TotalKg float64
}

// WeightEstimate is the result of estimating an order's physical weight.
type WeightEstimate struct {
	// TotalKg is the summed estimated weight of all lines.
	TotalKg float64
	// Lines is the per-line breakdown.
	Lines []LineWeight
}

// WeightEstimator converts order lines into an estimated physical weight
// using the cylinder weight class table and product metadata.
//
// The estimator never fails: absent reference data degrades to the
// documented defaults in the product package rather than erroring, because
// the figure feeds an allocation heuristic, not billing. Resolution per line:
//   - full/empty variant of a parent with a known nominal capacity: the
//     class's full or empty weight
//   - standalone product with a known capacity: assume full, content
//     capacity plus tare (DefaultTareKg when unrecorded)
//   - product with no capacity information, or an unresolvable reference:
//     DefaultFullCylinderKg per unit
type WeightEstimator struct {
	table product.WeightTable
}

// NewWeightEstimator creates a weight estimator over the given weight table.
// Pass product.DefaultWeightTable() for the standard cylinder classes.
func NewWeightEstimator(table product.WeightTable) WeightEstimator {
	return WeightEstimator{table: table}
}

// EstimateOrderWeight estimates the physical weight of an order's lines.
// The catalog maps product IDs to products so variant parents can be
// resolved; lines referencing unknown products fall back to the default
// reference weight. Pure function, no side effects.
func (e WeightEstimator) EstimateOrderWeight(
	lines []order.Line,
	catalog map[kernel.UUID]*product.Product,
) WeightEstimate {
	estimate := WeightEstimate{
		Lines: make([]LineWeight, 0, len(lines)),
	}

	for _, line := range lines {
		unitKg := e.unitWeightKg(line.ProductID(), catalog)
		totalKg := unitKg * float64(line.Quantity())

		estimate.Lines = append(estimate.Lines, LineWeight{
			LineID:    line.ID(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitKg:    unitKg,
			TotalKg:   totalKg,
		})
		estimate.TotalKg += totalKg
	}

	return estimate
}

func (e WeightEstimator) unitWeightKg(
	productID kernel.UUID,
	catalog map[kernel.UUID]*product.Product,
) float64 {
	p, ok := catalog[productID]
	if !ok || p == nil {
		return product.DefaultFullCylinderKg
	}

	if p.IsVariant() {
		return e.variantUnitWeightKg(p, catalog)
	}

	if p.CapacityKg() != nil {
		tare := product.DefaultTareKg
		if p.TareKg() != nil {
			tare = *p.TareKg()
		}
		// A standalone cylinder product is assumed to ship full.
		return *p.CapacityKg() + tare
	}

	return product.DefaultFullCylinderKg
}

func (e WeightEstimator) variantUnitWeightKg(
	p *product.Product,
	catalog map[kernel.UUID]*product.Product,
) float64 {
	parent, ok := catalog[*p.ParentID()]
	if !ok || parent == nil || parent.CapacityKg() == nil {
		if p.Variant() == product.VariantEmpty {
			return product.DefaultEmptyCylinderKg
		}
		return product.DefaultFullCylinderKg
	}

	if p.Variant() == product.VariantEmpty {
		return e.table.EmptyWeightKg(*parent.CapacityKg())
	}
	return e.table.FullWeightKg(*parent.CapacityKg())
}
