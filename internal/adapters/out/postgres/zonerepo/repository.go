package zonerepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new zone to the database together with its assignments.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
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

// Update saves an existing zone to the database. Assignment rows removed from
// the aggregate are deleted so the table mirrors the in-memory collection.
func (r *GormZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keptPersonIDs := make([]uuid.UUID, 0, len(dto.Assignments))
	for _, a := range dto.Assignments {
		keptPersonIDs = append(keptPersonIDs, a.DeliveryPersonID)
	}

	stale := r.db.WithContext(ctx).Where("zone_id = ?", dto.ID)
	if len(keptPersonIDs) > 0 {
		stale = stale.Where("delivery_person_id NOT IN ?", keptPersonIDs)
	}
	if err := stale.Delete(&AssignmentDTO{}).Error; err != nil {
		return err
	}

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

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a zone by ID while holding a row lock on the zone
// until the surrounding transaction ends. Capacity checks and load changes
// go through this method so concurrent assignments serialize.
func (r *GormZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, id, true)
}

func (r *GormZoneRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Preload("Assignments")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ZoneDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every zone, active or not, sorted by name.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// FindActiveByCityPincode retrieves active zones in the given city that cover
// the given pincode. Pincodes live in a JSON column, so the city narrows the
// candidate set in SQL and pincode membership is checked on the aggregate.
func (r *GormZoneRepository) FindActiveByCityPincode(ctx context.Context, city, pincode string) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("is_active AND lower(city) = lower(?)", city).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones, err := r.toDomainSlice(dtos)
	if err != nil {
		return nil, err
	}

	matched := make([]*zone.Zone, 0, len(zones))
	for _, z := range zones {
		if z.ContainsPincode(pincode) {
			matched = append(matched, z)
		}
	}

	return matched, nil
}

func (r *GormZoneRepository) toDomainSlice(dtos []ZoneDTO) ([]*zone.Zone, error) {
	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}
