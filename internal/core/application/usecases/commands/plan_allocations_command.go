package commands

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var (
	ErrPlanAllocationsCommandIsNotConstructed = errors.New(
		"PlanAllocationsCommand must be created via NewPlanAllocationsCommand constructor",
	)
	ErrDateIsRequired = errors.New("date is required")
)

// PlanAllocationsCommand represents a request to run the allocation
// optimizer over the pending orders of one delivery date and commit the
// proposed assignments.
//
// Example:
//
//	cmd, err := NewPlanAllocationsCommand(tomorrow)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlanAllocationsCommandHandler(uowFactory, estimator, optimizer)
//	result, err := handler.Handle(ctx, cmd)
type PlanAllocationsCommand struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

// NewPlanAllocationsCommand creates a command to plan allocations for a
// delivery date. The date is normalized to its calendar day.
func NewPlanAllocationsCommand(date time.Time) (PlanAllocationsCommand, error) {
	command := PlanAllocationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDate(date); err != nil {
		return PlanAllocationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanAllocationsCommand) Validate() error {
	return c.guard.Validate(ErrPlanAllocationsCommandIsNotConstructed)
}

// Date returns the target delivery date (UTC midnight).
func (c PlanAllocationsCommand) Date() time.Time {
	return c.date
}

func (c *PlanAllocationsCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = kernel.DateOnly(date)
	return nil
}
