package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes. The
// transaction alone does not serialize concurrent capacity decisions;
// commands that commit allocations additionally lock the truck rows they
// validate against (TruckRepository.GetForUpdate / GetAllForUpdate) so the
// validate-then-write sequence runs one writer at a time per truck.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TruckRepository returns a TruckRepository bound to the current transaction.
	TruckRepository() TruckRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AllocationRepository returns an AllocationRepository bound to the current transaction.
	AllocationRepository() AllocationRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository
}
