package trackingrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracking record to the database. The unique index on
// order_id rejects a second record for the same order.
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracking) error {
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

// Update saves an existing tracking record to the database.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TrackingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tracking record by ID.
func (r *GormTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the tracking record for an order.
func (r *GormTrackingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForOrder reports whether a tracking record already exists for an order.
func (r *GormTrackingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TrackingDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
