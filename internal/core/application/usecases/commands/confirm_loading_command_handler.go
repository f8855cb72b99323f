package commands

import (
	"context"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/services"
)

// ConfirmLoadingCommandHandler is the authoritative loading gate. It
// re-reads the truck inside a transaction with its row locked (SELECT ...
// FOR UPDATE), re-runs the pure capacity validation against what is
// actually on board at commit time, and only then records the load and
// marks the truck's planned allocations loaded. The row lock makes two
// loadings racing for the same truck's remaining capacity queue up: the
// second one validates against the state the first one committed.
//
// The returned LoadingResult carries the verdict either way: a rejected
// load is a normal outcome, not a handler error.
type ConfirmLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
	validator  services.LoadingValidator
}

// NewConfirmLoadingCommandHandler creates a handler for loading confirmations.
func NewConfirmLoadingCommandHandler(uowFactory LoadingUoWFactory) ConfirmLoadingCommandHandler {
	return ConfirmLoadingCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLoadingValidator(),
	}
}

// Handle processes the loading confirmation. On a failed validation the
// transaction is rolled back and the structured violations are returned with
// a nil error. On a passed validation the items are merged into the truck's
// inventory and its planned allocations for the date become loaded.
func (h ConfirmLoadingCommandHandler) Handle(
	ctx context.Context, cmd ConfirmLoadingCommand,
) (services.LoadingResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.LoadingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.LoadingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()
	allocationRepo := uow.AllocationRepository()

	aggregate, err := truckRepo.GetForUpdate(ctx, cmd.TruckID())
	if err != nil {
		return services.LoadingResult{}, err
	}

	result := h.validator.ValidateLoading(aggregate, cmd.Items())
	if !result.IsValid {
		return result, nil
	}

	if err = aggregate.Load(cmd.Items()); err != nil {
		return services.LoadingResult{}, err
	}
	if err = truckRepo.Update(ctx, aggregate); err != nil {
		return services.LoadingResult{}, err
	}

	allocations, err := allocationRepo.GetAllForTruckAndDate(ctx, cmd.TruckID(), cmd.Date())
	if err != nil {
		return services.LoadingResult{}, err
	}

	for _, a := range allocations {
		if a.Status() != allocation.StatusPlanned {
			continue
		}

		if err = a.MarkLoaded(); err != nil {
			return services.LoadingResult{}, err
		}
		if err = allocationRepo.Update(ctx, a); err != nil {
			return services.LoadingResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.LoadingResult{}, err
	}

	return result, nil
}
