package cmd

import (
	"gasfleet/internal/adapters/out/postgres"
	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/core/application/usecases/queries"
	"gasfleet/internal/core/domain/model/product"
	"gasfleet/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmLoadingCommandHandler() commands.ConfirmLoadingCommandHandler {
	var f commands.LoadingUoWFactory = FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmLoadingCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanAllocationsCommandHandler() commands.PlanAllocationsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanAllocationsCommandHandler(
		f,
		services.NewWeightEstimator(product.DefaultWeightTable()),
		services.NewAllocationOptimizer(services.DefaultSelectorPolicy()),
	)
}

func (c *CompositionRoot) CreateCancelAllocationCommandHandler() commands.CancelAllocationCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelAllocationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTruckCapacityQueryHandler() queries.GetTruckCapacityQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetTruckCapacityQueryHandler(uow.TruckRepository(), uow.AllocationRepository())
}

func (c *CompositionRoot) CreateGetDailyScheduleQueryHandler() queries.GetDailyScheduleQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetDailyScheduleQueryHandler(uow.TruckRepository(), uow.AllocationRepository())
}

func (c *CompositionRoot) CreateGetFleetUtilizationQueryHandler() queries.GetFleetUtilizationQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetFleetUtilizationQueryHandler(uow.TruckRepository(), uow.AllocationRepository())
}

func (c *CompositionRoot) CreateGetUnallocatedOrdersQueryHandler() queries.GetUnallocatedOrdersQueryHandler {
	return queries.NewGetUnallocatedOrdersQueryHandler(c.gormDB)
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
