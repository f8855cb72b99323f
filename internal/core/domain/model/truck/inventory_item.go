package truck

import (
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/product"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/guard"
)

// ErrInventoryItemIsNotConstructed is returned when using an improperly
// initialized InventoryItem.
var ErrInventoryItemIsNotConstructed = errors.New(
	"InventoryItem must be created via NewInventoryItem constructor")

// InventoryItem records the cylinders of one product physically on board a
// truck: full and empty counts, plus an optional pre-computed weight measured
// at loading time. When no measured weight is recorded, weight is derived
// from the per-cylinder defaults.
//
// Inventory items also describe proposed loads handed to the loading
// validator, which is why quantities of zero are allowed (a load may move
// only full or only empty cylinders).
type InventoryItem struct {
	productID kernel.UUID
	qtyFull   int
	qtyEmpty  int

	// weightKg is the measured weight of this item, nil if never weighed
	weightKg *float64

	guard guard.ConstructorGuard
}

// NewInventoryItem creates an inventory item for a product. Pass nil for
// weightKg when the load was not weighed; quantities must not be negative
// and at least one of them must be positive.
func NewInventoryItem(productID kernel.UUID, qtyFull, qtyEmpty int, weightKg *float64) (InventoryItem, error) {
	item := InventoryItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantities(qtyFull, qtyEmpty),
		item.setWeightKg(weightKg),
	); err != nil {
		return InventoryItem{}, err
	}

	return item, nil
}

// ProductID returns the identifier of the product on board.
func (i InventoryItem) ProductID() kernel.UUID {
	return i.productID
}

// QtyFull returns the count of full cylinders.
func (i InventoryItem) QtyFull() int {
	return i.qtyFull
}

// QtyEmpty returns the count of empty cylinders.
func (i InventoryItem) QtyEmpty() int {
	return i.qtyEmpty
}

// Units returns the total cylinder count, full and empty alike. Both occupy
// one slot each on the truck bed.
func (i InventoryItem) Units() int {
	return i.qtyFull + i.qtyEmpty
}

// MeasuredWeightKg returns the recorded weight, or nil if the item was never weighed.
func (i InventoryItem) MeasuredWeightKg() *float64 {
	return i.weightKg
}

// WeightKg returns the item's physical weight: the measured figure when one
// was recorded, otherwise the per-cylinder default estimate.
func (i InventoryItem) WeightKg() float64 {
	if i.weightKg != nil {
		return *i.weightKg
	}
	return float64(i.qtyFull)*product.DefaultFullCylinderKg +
		float64(i.qtyEmpty)*product.DefaultEmptyCylinderKg
}

func (i *InventoryItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *InventoryItem) setQuantities(qtyFull, qtyEmpty int) error {
	if qtyFull < 0 {
		return errs.NewValueIsInvalidError("qtyFull")
	}
	if qtyEmpty < 0 {
		return errs.NewValueIsInvalidError("qtyEmpty")
	}
	if qtyFull == 0 && qtyEmpty == 0 {
		return errs.NewValueIsRequiredError("at least one of qtyFull or qtyEmpty")
	}

	i.qtyFull = qtyFull
	i.qtyEmpty = qtyEmpty
	return nil
}

func (i *InventoryItem) setWeightKg(weightKg *float64) error {
	if weightKg != nil && *weightKg < 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	i.weightKg = weightKg
	return nil
}

// Validate checks that the InventoryItem was created via its constructor.
func (i InventoryItem) Validate() error {
	return i.guard.Validate(ErrInventoryItemIsNotConstructed)
}
