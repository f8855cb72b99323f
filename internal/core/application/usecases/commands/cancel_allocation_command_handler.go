package commands

import (
	"context"
)

// CancelAllocationCommandHandler marks an allocation cancelled. Cancelled
// allocations stop counting toward the truck's allocated weight, so the
// capacity frees up for the date the moment the transaction commits.
type CancelAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewCancelAllocationCommandHandler creates a handler for allocation cancellations.
func NewCancelAllocationCommandHandler(uowFactory AllocationUoWFactory) CancelAllocationCommandHandler {
	return CancelAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The aggregate enforces the
// lifecycle: cancelling a delivered or already cancelled allocation fails.
func (h CancelAllocationCommandHandler) Handle(ctx context.Context, cmd CancelAllocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	allocationRepo := uow.AllocationRepository()

	aggregate, err := allocationRepo.Get(ctx, cmd.AllocationID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = allocationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
