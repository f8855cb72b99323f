package order

import (
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one order line: a product reference, a quantity and a unit price.
// Lines belong to exactly one order and are immutable once the order leaves
// draft (enforced by the order service that owns the write path).
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewLine creates an order line. Quantity must be positive; unit price must
// not be negative (free-of-charge deposit swap lines are priced at zero).
func NewLine(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice float64) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Total returns quantity x unit price.
func (l Line) Total() float64 {
	return float64(l.quantity) * l.unitPrice
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	l.unitPrice = unitPrice
	return nil
}

// Validate checks that the Line was created via its constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
