package allocation

import (
	"fmt"

	"gasfleet/internal/pkg/errs"
)

// Status represents the lifecycle state of an allocation.
//
// State transitions:
//
//	Planned ──> Loaded ──> Delivered
//	   │          │
//	   └──────────┴──> Cancelled
//
// Planned allocations are proposals; they become physical the moment the
// loading validator passes and the truck is loaded. Cancelled allocations
// stop counting toward a truck's allocated weight.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status: the assignment is a proposal.
	StatusPlanned

	// StatusLoaded means the cylinders are physically on the truck.
	StatusLoaded

	// StatusDelivered is a final state; the order reached the customer.
	StatusDelivered

	// StatusCancelled is a final state; the allocation no longer consumes capacity.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPlanned:   "planned",
		StatusLoaded:    "loaded",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlanned:   "planned",
		StatusLoaded:    "loaded",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return getStatusStrings()[StatusUnknown]
}

// StatusFromString parses a status from its string name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsFinal() {
		return false
	}
	switch next {
	case StatusLoaded:
		return s == StatusPlanned
	case StatusDelivered:
		return s == StatusLoaded
	case StatusCancelled:
		return true
	default:
		return false
	}
}
