package product

// Default per-unit weights used wherever reference data is missing.
// They are the single source of truth for every fallback in the capacity
// core: the weight estimator, the capacity calculator, and the loading
// validator all resolve absent figures through these constants.
const (
	// DefaultFullCylinderKg is the assumed weight of one full cylinder when
	// neither the product nor the weight table can resolve it. It equals the
	// full weight of the 13 kg reference class.
	DefaultFullCylinderKg = 27.0

	// DefaultEmptyCylinderKg is the assumed weight of one empty cylinder when
	// no better figure is available.
	DefaultEmptyCylinderKg = 14.0

	// DefaultTareKg is the assumed vessel weight added to a known content
	// capacity when the product's tare weight is unrecorded.
	DefaultTareKg = 10.0
)

// WeightClass holds the physical weight figures for one nominal cylinder
// capacity class (e.g. the 13 kg class).
type WeightClass struct {
	// CapacityKg is the nominal content capacity that keys the class.
	CapacityKg float64
	// FullKg is the weight of a full cylinder (vessel + contents).
	FullKg float64
	// EmptyKg is the weight of the empty vessel.
	EmptyKg float64
	// NetKg is the weight of the contents alone.
	NetKg float64
}

// WeightTable is the cylinder weight reference lookup, keyed by nominal
// content capacity in kg. It is injected into the weight estimator rather
// than read from package state, so tests and tenants can substitute
// alternate tables without touching process globals.
type WeightTable map[float64]WeightClass

// DefaultWeightTable returns the standard cylinder weight classes in
// circulation: 6, 13, 48 and 90 kg.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		6:  {CapacityKg: 6, FullKg: 14, EmptyKg: 8, NetKg: 6},
		13: {CapacityKg: 13, FullKg: 27, EmptyKg: 14, NetKg: 13},
		48: {CapacityKg: 48, FullKg: 88, EmptyKg: 40, NetKg: 48},
		90: {CapacityKg: 90, FullKg: 160, EmptyKg: 70, NetKg: 90},
	}
}

// Class looks up the weight class for a nominal capacity.
func (t WeightTable) Class(capacityKg float64) (WeightClass, bool) {
	class, ok := t[capacityKg]
	return class, ok
}

// FullWeightKg returns the full-cylinder weight for a nominal capacity,
// falling back to DefaultFullCylinderKg when the class is unknown.
func (t WeightTable) FullWeightKg(capacityKg float64) float64 {
	if class, ok := t[capacityKg]; ok {
		return class.FullKg
	}
	return DefaultFullCylinderKg
}

// EmptyWeightKg returns the empty-cylinder weight for a nominal capacity,
// falling back to DefaultEmptyCylinderKg when the class is unknown.
func (t WeightTable) EmptyWeightKg(capacityKg float64) float64 {
	if class, ok := t[capacityKg]; ok {
		return class.EmptyKg
	}
	return DefaultEmptyCylinderKg
}
