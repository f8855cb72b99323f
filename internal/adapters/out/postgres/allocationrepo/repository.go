package allocationrepo

import (
	"context"
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAllocationRepository implements AllocationRepository using GORM.
type GormAllocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAllocationRepository creates a new GORM allocation repository.
func NewGormAllocationRepository(db *gorm.DB, tracker aggregateTracker) *GormAllocationRepository {
	return &GormAllocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new allocation to the database.
func (r *GormAllocationRepository) Add(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing allocation to the database.
func (r *GormAllocationRepository) Update(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an allocation by ID.
func (r *GormAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("allocation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForDate retrieves all allocations for the given calendar date,
// including cancelled ones. Capacity math filters by status itself.
func (r *GormAllocationRepository) GetAllForDate(ctx context.Context, date time.Time) ([]*allocation.Allocation, error) {
	day := kernel.DateOnly(date)

	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).
		Where("date = ?", day).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForTruckAndDate retrieves all allocations targeting one truck on one
// calendar date, including cancelled ones.
func (r *GormAllocationRepository) GetAllForTruckAndDate(
	ctx context.Context,
	truckID kernel.UUID,
	date time.Time,
) ([]*allocation.Allocation, error) {
	if err := truckID.Validate(); err != nil {
		return nil, err
	}
	day := kernel.DateOnly(date)

	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).
		Where("truck_id = ? AND date = ?", truckID.Bytes(), day).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AllocationDTO) ([]*allocation.Allocation, error) {
	allocations := make([]*allocation.Allocation, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}

	return allocations, nil
}
