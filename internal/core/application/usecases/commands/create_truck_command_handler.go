package commands

import (
	"context"

	"gasfleet/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler handles the business logic for truck registration.
// Creates and persists new truck aggregates with their capacity limits.
//
// Example:
//
//	handler := NewCreateTruckCommandHandler(uowFactory)
//	cmd, _ := NewCreateTruckCommand("KBX 412T", 40, 1000)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("truck registration failed: %w", err)
//	}
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
// Requires a TruckUoWFactory for transactional persistence operations.
func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck creation command.
// Creates a new truck aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) error {
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

	truckRepo := uow.TruckRepository()
	aggregate, err := truck.NewTruck(cmd.TruckID(), cmd.Plate(), cmd.CapacityCylinders(), cmd.CapacityKg())
	if err != nil {
		return err
	}

	if err = truckRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
