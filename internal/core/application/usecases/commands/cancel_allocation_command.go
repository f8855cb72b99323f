package commands

import (
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var ErrCancelAllocationCommandIsNotConstructed = errors.New(
	"CancelAllocationCommand must be created via NewCancelAllocationCommand constructor",
)

// CancelAllocationCommand represents a request to withdraw an allocation,
// freeing its weight on the truck for the date.
type CancelAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAllocationCommand creates a command to cancel an allocation.
func NewCancelAllocationCommand(allocationID kernel.UUID) (CancelAllocationCommand, error) {
	command := CancelAllocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAllocationID(allocationID); err != nil {
		return CancelAllocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAllocationCommand) Validate() error {
	return c.guard.Validate(ErrCancelAllocationCommandIsNotConstructed)
}

// AllocationID returns the allocation to cancel.
func (c CancelAllocationCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

func (c *CancelAllocationCommand) setAllocationID(allocationID kernel.UUID) error {
	if err := allocationID.Validate(); err != nil {
		return err
	}

	c.allocationID = allocationID
	return nil
}
