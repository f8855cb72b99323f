package ports

import (
	"context"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The capacity core reads orders owned by the back-office order service and
// only writes their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingForDate retrieves the orders awaiting fleet allocation
	// for the given delivery date. These are the planning inputs of an
	// optimizer run.
	GetAllPendingForDate(ctx context.Context, date time.Time) ([]*order.Order, error)
}
