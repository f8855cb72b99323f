// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var (
	ErrGetTruckCapacityQueryIsNotConstructed = errors.New(
		"GetTruckCapacityQuery must be created via NewGetTruckCapacityQuery constructor",
	)
	ErrDateIsRequired = errors.New("date is required")
)

// GetTruckCapacityQuery retrieves the capacity snapshot of one truck for a
// delivery date: capacity, allocated and available weight, utilization and
// the overallocation flag.
//
// Example:
//
//	query, err := NewGetTruckCapacityQuery(truckID, date)
//	if err != nil {
//	    return err
//	}
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read truck capacity: %w", err)
//	}
//	fmt.Printf("available: %.1f kg (%.1f%% utilized)\n", info.AvailableKg, info.UtilizationPct)
type GetTruckCapacityQuery struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewGetTruckCapacityQuery creates a query for one truck's capacity snapshot.
// The date is normalized to its calendar day.
func NewGetTruckCapacityQuery(truckID kernel.UUID, date time.Time) (GetTruckCapacityQuery, error) {
	query := GetTruckCapacityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setTruckID(truckID),
		query.setDate(date),
	); err != nil {
		return GetTruckCapacityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckCapacityQueryIsNotConstructed)
}

// TruckID returns the queried truck's identifier.
func (q GetTruckCapacityQuery) TruckID() kernel.UUID {
	return q.truckID
}

// Date returns the queried calendar date (UTC midnight).
func (q GetTruckCapacityQuery) Date() time.Time {
	return q.date
}

func (q *GetTruckCapacityQuery) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	q.truckID = truckID
	return nil
}

func (q *GetTruckCapacityQuery) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	q.date = kernel.DateOnly(date)
	return nil
}
