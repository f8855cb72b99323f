package truck

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/product"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/guard"
)

// defaultFuelConsumptionLPer100Km is assumed when a truck's average
// consumption was never recorded.
const defaultFuelConsumptionLPer100Km = 12.0

var (
	// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")
	// ErrPlateIsRequired is returned when attempting to create a truck without a plate number.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
)

// Truck is the aggregate root for one delivery vehicle. It carries the two
// independent capacity limits every loading decision is checked against
// (cylinder slots and mass) together with the operational state (status,
// maintenance schedule, fuel figures) and the physically loaded on-board
// inventory.
//
// Key invariants:
//   - capacityCylinders must be positive
//   - capacityKg may be unset (zero); the loading validator reconstructs it
//     deterministically as capacityCylinders x DefaultFullCylinderKg rather
//     than ever treating it as unlimited
//   - on-board inventory is only mutated through Load / Unload
//
// Example usage:
//
//	tr, err := truck.NewTruck(kernel.NewUUID(), "KBX 412T", 40, 1000)
//	if err != nil {
//	    return err
//	}
//	tr.SetFuel(120, 14)
type Truck struct {
	// id uniquely identifies the truck
	id kernel.UUID

	// plate is the registration plate, used for display and reports
	plate string

	// isActive marks whether the truck belongs to the working fleet at all
	isActive bool

	// status is the operational state (active / inactive / maintenance)
	status Status

	// capacityCylinders is the number of cylinder slots on the bed
	capacityCylinders int

	// capacityKg is the mass limit in kg; zero means not explicitly set
	capacityKg float64

	// nextMaintenanceDate is when the truck is next due for service (nil if unplanned)
	nextMaintenanceDate *time.Time

	// fuelTankLiters is the fuel tank size in liters
	fuelTankLiters float64

	// fuelConsumptionLPer100Km is the average consumption; zero means unknown
	fuelConsumptionLPer100Km float64

	// inventory is the physically loaded on-board stock
	inventory []InventoryItem

	guard guard.ConstructorGuard
}

// NewTruck creates an active truck with the given capacity limits.
// capacityCylinders must be positive; pass capacityKg of 0 when the mass
// limit is not explicitly known.
func NewTruck(id kernel.UUID, plate string, capacityCylinders int, capacityKg float64) (*Truck, error) {
	t := &Truck{
		isActive: true,
		status:   StatusActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setCapacityCylinders(capacityCylinders),
		t.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck aggregate from persistent storage,
// including its operational state and on-board inventory.
func RestoreTruck(
	id kernel.UUID,
	plate string,
	isActive bool,
	status Status,
	capacityCylinders int,
	capacityKg float64,
	nextMaintenanceDate *time.Time,
	fuelTankLiters float64,
	fuelConsumptionLPer100Km float64,
	inventory []InventoryItem,
) (*Truck, error) {
	t := &Truck{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setStatus(status),
		t.setCapacityCylinders(capacityCylinders),
		t.setCapacityKg(capacityKg),
		t.setInventory(inventory),
	); err != nil {
		return nil, err
	}

	t.nextMaintenanceDate = nextMaintenanceDate
	t.fuelTankLiters = fuelTankLiters
	t.fuelConsumptionLPer100Km = fuelConsumptionLPer100Km
	return t, nil
}

// IsEqual compares two trucks by their unique identifiers.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the registration plate.
func (t *Truck) Plate() string {
	return t.plate
}

// IsActive reports whether the truck belongs to the working fleet.
func (t *Truck) IsActive() bool {
	return t.isActive
}

// Status returns the operational status.
func (t *Truck) Status() Status {
	return t.status
}

// CapacityCylinders returns the cylinder-slot limit.
func (t *Truck) CapacityCylinders() int {
	return t.capacityCylinders
}

// CapacityKg returns the explicitly configured mass limit in kg, or 0 when unset.
func (t *Truck) CapacityKg() float64 {
	return t.capacityKg
}

// EffectiveCapacityKg returns the mass limit a loading decision must use:
// the configured capacityKg, or capacityCylinders x DefaultFullCylinderKg
// when none was set. An absent limit is never treated as unlimited.
func (t *Truck) EffectiveCapacityKg() float64 {
	if t.capacityKg > 0 {
		return t.capacityKg
	}
	return float64(t.capacityCylinders) * product.DefaultFullCylinderKg
}

// NextMaintenanceDate returns the next maintenance due date, or nil if unplanned.
func (t *Truck) NextMaintenanceDate() *time.Time {
	return t.nextMaintenanceDate
}

// FuelTankLiters returns the fuel tank size in liters.
func (t *Truck) FuelTankLiters() float64 {
	return t.fuelTankLiters
}

// FuelConsumptionLPer100Km returns the average consumption, substituting the
// fleet default when the truck's own figure was never recorded.
func (t *Truck) FuelConsumptionLPer100Km() float64 {
	if t.fuelConsumptionLPer100Km > 0 {
		return t.fuelConsumptionLPer100Km
	}
	return defaultFuelConsumptionLPer100Km
}

// Inventory returns the physically loaded on-board stock.
func (t *Truck) Inventory() []InventoryItem {
	return t.inventory
}

// InventoryUnits returns the total cylinder count currently on board.
func (t *Truck) InventoryUnits() int {
	var units int
	for _, item := range t.inventory {
		units += item.Units()
	}
	return units
}

// InventoryWeightKg returns the measured weight of the on-board inventory,
// using each item's recorded weight when present and the per-cylinder
// defaults otherwise.
func (t *Truck) InventoryWeightKg() float64 {
	var weight float64
	for _, item := range t.inventory {
		weight += item.WeightKg()
	}
	return weight
}

// IsOperational reports whether the truck may take part in allocation
// planning and loading: it must be active and not under maintenance.
func (t *Truck) IsOperational() bool {
	return t.isActive && t.status == StatusActive
}

// ScheduleMaintenance records the next maintenance due date.
func (t *Truck) ScheduleMaintenance(due time.Time) {
	date := kernel.DateOnly(due)
	t.nextMaintenanceDate = &date
}

// SetFuel records the truck's fuel tank size and average consumption.
func (t *Truck) SetFuel(tankLiters, consumptionLPer100Km float64) error {
	if tankLiters < 0 {
		return errs.NewValueIsInvalidError("tankLiters")
	}
	if consumptionLPer100Km < 0 {
		return errs.NewValueIsInvalidError("consumptionLPer100Km")
	}

	t.fuelTankLiters = tankLiters
	t.fuelConsumptionLPer100Km = consumptionLPer100Km
	return nil
}

// ChangeStatus moves the truck to a new operational status.
func (t *Truck) ChangeStatus(status Status) error {
	return t.setStatus(status)
}

// Deactivate removes the truck from the working fleet.
func (t *Truck) Deactivate() {
	t.isActive = false
	t.status = StatusInactive
}

// Load merges the given items into the on-board inventory. The caller is
// responsible for gating the load through the loading validator first; Load
// itself only records what was physically put on the bed.
func (t *Truck) Load(items []InventoryItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range items {
		t.mergeItem(item)
	}
	return nil
}

// Unload clears the on-board inventory after a completed route.
func (t *Truck) Unload() {
	t.inventory = nil
}

func (t *Truck) mergeItem(item InventoryItem) {
	for idx, existing := range t.inventory {
		if !existing.ProductID().IsEqual(item.ProductID()) {
			continue
		}

		var weight *float64
		if existing.MeasuredWeightKg() != nil || item.MeasuredWeightKg() != nil {
			merged := existing.WeightKg() + item.WeightKg()
			weight = &merged
		}

		merged, err := NewInventoryItem(
			item.ProductID(),
			existing.QtyFull()+item.QtyFull(),
			existing.QtyEmpty()+item.QtyEmpty(),
			weight,
		)
		if err != nil {
			// Quantities of two valid items summed are still valid.
			return
		}

		t.inventory[idx] = merged
		return
	}

	t.inventory = append(t.inventory, item)
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

func (t *Truck) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	t.plate = plate
	return nil
}

func (t *Truck) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}

func (t *Truck) setCapacityCylinders(capacityCylinders int) error {
	if capacityCylinders <= 0 {
		return errs.NewValueIsInvalidError("capacityCylinders")
	}

	t.capacityCylinders = capacityCylinders
	return nil
}

func (t *Truck) setCapacityKg(capacityKg float64) error {
	if capacityKg < 0 {
		return errs.NewValueIsInvalidError("capacityKg")
	}

	t.capacityKg = capacityKg
	return nil
}

func (t *Truck) setInventory(inventory []InventoryItem) error {
	for _, item := range inventory {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	t.inventory = inventory
	return nil
}

// Validate checks that the Truck was created via its constructor.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}
