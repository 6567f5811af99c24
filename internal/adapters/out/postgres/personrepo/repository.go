package personrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM delivery person repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery person to the database.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *person.DeliveryPerson) error {
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

// Update saves an existing delivery person to the database.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *person.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryPersonDTO{}).
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

// Get retrieves a delivery person by ID.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves a delivery person by their linked user account.
func (r *GormDeliveryPersonRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*person.DeliveryPerson, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the delivery persons with the given IDs. Missing IDs are
// simply absent from the result; callers decide whether that matters.
func (r *GormDeliveryPersonRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*person.DeliveryPerson, error) {
	if len(ids) == 0 {
		return []*person.DeliveryPerson{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []DeliveryPersonDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	persons := make([]*person.DeliveryPerson, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	return persons, nil
}
