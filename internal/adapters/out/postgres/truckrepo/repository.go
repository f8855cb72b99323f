package truckrepo

import (
	"context"
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
	"gasfleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
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

// Update saves an existing truck to the database.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a truck by ID with its row locked (SELECT ...
// FOR UPDATE) until the surrounding transaction ends. A second transaction
// reading the same truck for update blocks until the first commits, which
// serializes concurrent capacity decisions against the truck.
func (r *GormTruckRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	return r.get(ctx, id, true)
}

func (r *GormTruckRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto TruckDTO
	if err := db.Preload("Inventory").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every truck in the fleet, including inactive and
// maintenance trucks. Callers filter by operational state themselves.
func (r *GormTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	return r.getAll(ctx, false)
}

// GetAllForUpdate retrieves the whole fleet with every truck row locked
// until the surrounding transaction ends. Batch commit paths read through
// this so only one fleet-wide assignment runs at a time.
func (r *GormTruckRepository) GetAllForUpdate(ctx context.Context) ([]*truck.Truck, error) {
	return r.getAll(ctx, true)
}

func (r *GormTruckRepository) getAll(ctx context.Context, lock bool) ([]*truck.Truck, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dtos []TruckDTO
	if err := db.
		Preload("Inventory").
		Order("plate").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}
