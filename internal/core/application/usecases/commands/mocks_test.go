package commands_test

import (
	"context"
	"time"

	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"
	"gasfleet/internal/core/domain/model/product"
	"gasfleet/internal/core/domain/model/truck"
	"gasfleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAllForUpdate(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingForDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) Add(ctx context.Context, aggregate *allocation.Allocation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAllocationRepository) Update(ctx context.Context, aggregate *allocation.Allocation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetAllForDate(ctx context.Context, date time.Time) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetAllForTruckAndDate(
	ctx context.Context, truckID kernel.UUID, date time.Time,
) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, truckID, date)
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) (map[kernel.UUID]*product.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[kernel.UUID]*product.Product), args.Error(1)
}

// MockUoW implements every unit of work flavor the handlers use.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockTruckUoWFactory struct {
	mock.Mock
}

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockAllocationUoWFactory struct {
	mock.Mock
}

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockLoadingUoWFactory struct {
	mock.Mock
}

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
