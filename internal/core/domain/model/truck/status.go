package truck

import (
	"fmt"

	"gasfleet/internal/pkg/errs"
)

// Status represents a truck's operational state. Only Active trucks take
// part in allocation planning and loading; Maintenance and Inactive trucks
// are excluded by both the selector and the loading validator.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the truck is in service and eligible for loading.
	StatusActive

	// StatusInactive means the truck is parked and out of rotation.
	StatusInactive

	// StatusMaintenance means the truck is in the workshop.
	StatusMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusActive:      "active",
		StatusInactive:    "inactive",
		StatusMaintenance: "maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:      "active",
		StatusInactive:    "inactive",
		StatusMaintenance: "maintenance",
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
