package queries

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var ErrGetDailyScheduleQueryIsNotConstructed = errors.New(
	"GetDailyScheduleQuery must be created via NewGetDailyScheduleQuery constructor",
)

// GetDailyScheduleQuery retrieves the per-truck schedules of one delivery
// date across the whole fleet, including inactive and maintenance trucks.
type GetDailyScheduleQuery struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyScheduleQuery creates a query for one date's fleet schedule.
func NewGetDailyScheduleQuery(date time.Time) (GetDailyScheduleQuery, error) {
	query := GetDailyScheduleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDate(date); err != nil {
		return GetDailyScheduleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyScheduleQueryIsNotConstructed)
}

// Date returns the queried calendar date (UTC midnight).
func (q GetDailyScheduleQuery) Date() time.Time {
	return q.date
}

func (q *GetDailyScheduleQuery) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	q.date = kernel.DateOnly(date)
	return nil
}
