package queries

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var ErrGetUnallocatedOrdersQueryIsNotConstructed = errors.New(
	"GetUnallocatedOrdersQuery must be created via NewGetUnallocatedOrdersQuery constructor",
)

// GetUnallocatedOrdersQuery retrieves the orders of one delivery date that
// are still waiting for a truck. These are the orders a planning run could
// not place plus any submitted after the last run.
//
// Example:
//
//	query, err := NewGetUnallocatedOrdersQuery(date)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve unallocated orders: %w", err)
//	}
//	fmt.Printf("%d orders without a truck\n", len(orders))
type GetUnallocatedOrdersQuery struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetUnallocatedOrdersQuery creates a query for one date's unallocated orders.
func NewGetUnallocatedOrdersQuery(date time.Time) (GetUnallocatedOrdersQuery, error) {
	query := GetUnallocatedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDate(date); err != nil {
		return GetUnallocatedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnallocatedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnallocatedOrdersQueryIsNotConstructed)
}

// Date returns the queried calendar date (UTC midnight).
func (q GetUnallocatedOrdersQuery) Date() time.Time {
	return q.date
}

func (q *GetUnallocatedOrdersQuery) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	q.date = kernel.DateOnly(date)
	return nil
}

// GetUnallocatedOrdersQueryResponse represents one waiting order in the read model.
type GetUnallocatedOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	DeliveryDate time.Time
	LinesCount   int
}
