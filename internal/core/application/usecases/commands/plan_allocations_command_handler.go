package commands

import (
	"context"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/services"
)

// PlanAllocationsCommandHandler orchestrates a planning run: it estimates
// the weight of every pending order for the date, lets the optimizer
// propose assignments, and commits the proposed allocations together with
// the order confirmations in a single transaction. The fleet read locks
// every truck row for that transaction, so concurrent planning and loading
// commits against the same trucks queue up behind it; the optimizer itself
// stays pure and advisory.
//
// Example:
//
//	handler := NewPlanAllocationsCommandHandler(uowFactory, estimator, optimizer)
//	cmd, _ := NewPlanAllocationsCommand(tomorrow)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("allocated %d of %d orders", result.Summary.AllocatedOrders, result.Summary.TotalOrders)
type PlanAllocationsCommandHandler struct {
	uowFactory UoWFactory
	estimator  services.WeightEstimator
	optimizer  services.AllocationOptimizer
}

// NewPlanAllocationsCommandHandler creates a handler for planning runs.
func NewPlanAllocationsCommandHandler(
	uowFactory UoWFactory,
	estimator services.WeightEstimator,
	optimizer services.AllocationOptimizer,
) PlanAllocationsCommandHandler {
	return PlanAllocationsCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		optimizer:  optimizer,
	}
}

// Handle processes the planning command. Reads the pending orders, the
// fleet snapshot (with the truck rows locked for the transaction), the
// date's existing allocations and the product catalog inside one
// transaction, runs the optimizer seeded with those existing allocations,
// persists every proposed allocation and confirms the matching orders.
// Seeding means a repeated run for the same date only places weight the
// earlier runs left unclaimed. An empty pending pool yields an empty
// result without error.
func (h PlanAllocationsCommandHandler) Handle(
	ctx context.Context, cmd PlanAllocationsCommand,
) (services.OptimizationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OptimizationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.OptimizationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	truckRepo := uow.TruckRepository()
	allocationRepo := uow.AllocationRepository()

	orders, err := orderRepo.GetAllPendingForDate(ctx, cmd.Date())
	if err != nil {
		return services.OptimizationResult{}, err
	}

	trucks, err := truckRepo.GetAllForUpdate(ctx)
	if err != nil {
		return services.OptimizationResult{}, err
	}

	existing, err := allocationRepo.GetAllForDate(ctx, cmd.Date())
	if err != nil {
		return services.OptimizationResult{}, err
	}

	catalog, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return services.OptimizationResult{}, err
	}

	orderWeights := make(map[kernel.UUID]float64, len(orders))
	for _, ord := range orders {
		orderWeights[ord.ID()] = h.estimator.EstimateOrderWeight(ord.Lines(), catalog).TotalKg
	}

	result := h.optimizer.OptimizeAllocations(orders, orderWeights, trucks, existing, cmd.Date())

	ordersByID := make(map[kernel.UUID]int, len(orders))
	for idx, ord := range orders {
		ordersByID[ord.ID()] = idx
	}

	for _, proposed := range result.Allocations {
		if err = allocationRepo.Add(ctx, proposed.Allocation); err != nil {
			return services.OptimizationResult{}, err
		}

		ord := orders[ordersByID[proposed.Allocation.OrderID()]]
		if err = ord.Confirm(); err != nil {
			return services.OptimizationResult{}, err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return services.OptimizationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.OptimizationResult{}, err
	}

	return result, nil
}
