package order

import (
	"fmt"

	"gasfleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order as far as this
// service reads it. The full order lifecycle (pricing, payment, invoicing)
// is owned by the back-office order service; the capacity core only needs to
// know whether an order is still a draft, awaiting delivery, or finished.
//
// State transitions:
//
//	Draft ──> Pending ──> Confirmed ──> Delivered
//	  │          │            │
//	  └──────────┴────────────┴──> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status; lines may still change.
	Draft

	// Pending means the order left draft and is waiting for fleet allocation.
	Pending

	// Confirmed means the order has been allocated to a truck for a date.
	Confirmed

	// Delivered is a final state; the cylinders reached the customer.
	Delivered

	// Cancelled is a final state; the order will never be delivered.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return getStatusStrings()[Unknown]
}

// StatusFromString parses a status from its string name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsFinal() {
		return false
	}
	switch next {
	case Pending:
		return s == Draft
	case Confirmed:
		return s == Pending
	case Delivered:
		return s == Confirmed
	case Cancelled:
		return true
	default:
		return false
	}
}
