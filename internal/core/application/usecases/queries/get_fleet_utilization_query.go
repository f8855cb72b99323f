package queries

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var ErrGetFleetUtilizationQueryIsNotConstructed = errors.New(
	"GetFleetUtilizationQuery must be created via NewGetFleetUtilizationQuery constructor",
)

// GetFleetUtilizationQuery retrieves the fleet-wide utilization rollup for
// one delivery date, restricted to active non-maintenance trucks.
type GetFleetUtilizationQuery struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetFleetUtilizationQuery creates a query for one date's fleet rollup.
func NewGetFleetUtilizationQuery(date time.Time) (GetFleetUtilizationQuery, error) {
	query := GetFleetUtilizationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDate(date); err != nil {
		return GetFleetUtilizationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFleetUtilizationQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetUtilizationQueryIsNotConstructed)
}

// Date returns the queried calendar date (UTC midnight).
func (q GetFleetUtilizationQuery) Date() time.Time {
	return q.date
}

func (q *GetFleetUtilizationQuery) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	q.date = kernel.DateOnly(date)
	return nil
}
