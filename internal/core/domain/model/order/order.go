package order

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when attempting to create an order without lines.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order requires at least one line")

	// ErrInvalidStatusTransition is returned when a lifecycle transition is not permitted.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Order represents a customer order for cylinder delivery. It is the
// aggregate root for order lines and the lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must carry at least one line
//   - Status transitions follow the lifecycle defined on Status
//   - Can only be created through NewOrder
//
// The capacity core reads id, customer, status and the weight derived from
// the lines; amounts and payment state are owned elsewhere.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// deliveryDate is the requested delivery date (nil if not yet scheduled)
	deliveryDate *time.Time

	// lines are the ordered products with quantities and prices
	lines []Line

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with the given lines.
func NewOrder(id kernel.UUID, customerID kernel.UUID, lines []Line) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// lifecycle state and scheduled delivery date.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	deliveryDate *time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.deliveryDate = deliveryDate
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryDate returns the requested delivery date, or nil if unscheduled.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Lines returns the order's lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// TotalAmount returns the summed line totals.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Total()
	}
	return total
}

// Submit moves the order from Draft to Pending, scheduling it for the given
// delivery date. Lines are immutable from this point on.
func (o *Order) Submit(deliveryDate time.Time) error {
	if err := o.transitionTo(Pending); err != nil {
		return err
	}

	date := kernel.DateOnly(deliveryDate)
	o.deliveryDate = &date
	return nil
}

// Confirm marks the order as allocated to a truck.
func (o *Order) Confirm() error {
	return o.transitionTo(Confirmed)
}

// MarkDelivered marks the order as delivered to the customer.
func (o *Order) MarkDelivered() error {
	return o.transitionTo(Delivered)
}

// Cancel terminates the order. Allowed from any non-final status.
func (o *Order) Cancel() error {
	return o.transitionTo(Cancelled)
}

func (o *Order) transitionTo(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.Join(ErrInvalidStatusTransition,
				errors.New(o.status.String()+" -> "+next.String())),
		)
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}
