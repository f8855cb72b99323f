package allocation

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/guard"
)

var (
	// ErrAllocationIsNotConstructed is returned when using an improperly initialized Allocation.
	ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")
	// ErrInvalidStatusTransition is returned when a lifecycle transition is not permitted.
	ErrInvalidStatusTransition = errors.New("invalid allocation status transition")
)

// Allocation is a planned assignment of one order's estimated weight to one
// truck for one calendar date. Allocations start as proposals (planned) and
// only describe physical reality once loaded; until then they are additive
// planning inputs to the capacity calculator.
//
// Invariants:
//   - weightKg must be positive
//   - date is normalized to a calendar date (UTC midnight)
//   - status transitions follow the lifecycle defined on Status
type Allocation struct {
	// id uniquely identifies the allocation
	id kernel.UUID

	// orderID references the allocated order
	orderID kernel.UUID

	// truckID references the receiving truck
	truckID kernel.UUID

	// date is the delivery calendar date
	date time.Time

	// weightKg is the order's estimated weight charged against the truck
	weightKg float64

	// status is the lifecycle state
	status Status

	guard guard.ConstructorGuard
}

// NewAllocation creates a planned allocation of an order to a truck for a date.
func NewAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	truckID kernel.UUID,
	date time.Time,
	weightKg float64,
) (*Allocation, error) {
	a := &Allocation{
		status: StatusPlanned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setTruckID(truckID),
		a.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	a.date = kernel.DateOnly(date)
	return a, nil
}

// RestoreAllocation reconstructs an Allocation from persistent storage.
func RestoreAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	truckID kernel.UUID,
	date time.Time,
	weightKg float64,
	status Status,
) (*Allocation, error) {
	a := &Allocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setTruckID(truckID),
		a.setWeightKg(weightKg),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	a.date = kernel.DateOnly(date)
	return a, nil
}

// IsEqual compares two allocations by their unique identifiers.
func (a *Allocation) IsEqual(other *Allocation) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the allocation's unique identifier.
func (a *Allocation) ID() kernel.UUID {
	return a.id
}

// OrderID returns the allocated order's identifier.
func (a *Allocation) OrderID() kernel.UUID {
	return a.orderID
}

// TruckID returns the receiving truck's identifier.
func (a *Allocation) TruckID() kernel.UUID {
	return a.truckID
}

// Date returns the delivery calendar date (UTC midnight).
func (a *Allocation) Date() time.Time {
	return a.date
}

// WeightKg returns the allocated weight in kg.
func (a *Allocation) WeightKg() float64 {
	return a.weightKg
}

// Status returns the lifecycle status.
func (a *Allocation) Status() Status {
	return a.status
}

// CountsTowardCapacity reports whether the allocation still consumes truck
// capacity. Cancelled allocations do not.
func (a *Allocation) CountsTowardCapacity() bool {
	return a.status != StatusCancelled
}

// IsFor reports whether the allocation targets the given truck and date.
func (a *Allocation) IsFor(truckID kernel.UUID, date time.Time) bool {
	return a.truckID.IsEqual(truckID) && kernel.SameDate(a.date, date)
}

// MarkLoaded records that the cylinders were physically loaded on the truck.
func (a *Allocation) MarkLoaded() error {
	return a.transitionTo(StatusLoaded)
}

// MarkDelivered records that the order reached the customer.
func (a *Allocation) MarkDelivered() error {
	return a.transitionTo(StatusDelivered)
}

// Cancel withdraws the allocation, freeing the truck's capacity for the date.
func (a *Allocation) Cancel() error {
	return a.transitionTo(StatusCancelled)
}

func (a *Allocation) transitionTo(next Status) error {
	if !a.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.Join(ErrInvalidStatusTransition,
				errors.New(a.status.String()+" -> "+next.String())),
		)
	}

	a.status = next
	return nil
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Allocation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

func (a *Allocation) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	a.truckID = truckID
	return nil
}

func (a *Allocation) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	a.weightKg = weightKg
	return nil
}

func (a *Allocation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	a.status = status
	return nil
}

// Validate checks that the Allocation was created via its constructor.
func (a *Allocation) Validate() error {
	if a == nil {
		return ErrAllocationIsNotConstructed
	}
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}
