// Package trackingrepo provides data transfer objects and mapping functions
// for delivery tracking persistence. This package implements the repository
// pattern for the tracking domain aggregate, handling the conversion between
// domain entities and database representations.
package trackingrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingDTO represents the database structure for persisting tracking
// aggregates. The unique index on order_id enforces one tracking record per
// order, which is what makes assignment idempotent under concurrency.
type TrackingDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryPersonID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           int        `gorm:"type:smallint;not null;index"`
	DeliveryAddress  AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time

	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time
	ReturnedAt       *time.Time

	DeliveryProof string `gorm:"type:text"`
	DeliveryNotes string `gorm:"type:text"`
	FailureReason int    `gorm:"type:smallint;not null"`
	FailureNotes  string `gorm:"type:text"`

	AttemptCount int `gorm:"type:int;not null"`
	MaxRetries   int `gorm:"type:int;not null"`

	CustomerRating   *int   `gorm:"type:smallint"`
	CustomerFeedback string `gorm:"type:text"`

	CurrentLongitude   *float64 `gorm:"type:numeric(9,6)"`
	CurrentLatitude    *float64 `gorm:"type:numeric(9,6)"`
	LastLocationUpdate *time.Time
}

// TableName specifies the database table name for tracking entities.
func (TrackingDTO) TableName() string {
	return "trackings"
}

// AddressDTO represents the embedded delivery address within the tracking table.
type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(128);not null"`
	State    string `gorm:"type:varchar(128);not null"`
	Pincode  string `gorm:"type:varchar(16);not null"`
	Landmark string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`
}

// fromDomain converts a tracking domain aggregate to its database representation.
func fromDomain(aggregate *tracking.Tracking) TrackingDTO {
	address := aggregate.DeliveryAddress()
	milestones := aggregate.Milestones()

	var longitude, latitude *float64
	if loc := aggregate.CurrentLocation(); loc != nil {
		lon := loc.Longitude()
		lat := loc.Latitude()
		longitude = &lon
		latitude = &lat
	}

	return TrackingDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DeliveryPersonID: aggregate.DeliveryPersonID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		Status:           int(aggregate.Status()),
		DeliveryAddress: AddressDTO{
			Street:   address.Street(),
			City:     address.City(),
			State:    address.State(),
			Pincode:  address.Pincode(),
			Landmark: address.Landmark(),
			Phone:    address.Phone(),
		},
		ExpectedDeliveryTime: aggregate.ExpectedDeliveryTime(),
		ActualDeliveryTime:   aggregate.ActualDeliveryTime(),
		AssignedAt:           milestones.AssignedAt,
		PickedUpAt:           milestones.PickedUpAt,
		InTransitAt:          milestones.InTransitAt,
		OutForDeliveryAt:     milestones.OutForDeliveryAt,
		DeliveredAt:          milestones.DeliveredAt,
		FailedAt:             milestones.FailedAt,
		ReturnedAt:           milestones.ReturnedAt,
		DeliveryProof:        aggregate.DeliveryProof(),
		DeliveryNotes:        aggregate.DeliveryNotes(),
		FailureReason:        int(aggregate.FailureReason()),
		FailureNotes:         aggregate.FailureNotes(),
		AttemptCount:         aggregate.AttemptCount(),
		MaxRetries:           aggregate.MaxRetries(),
		CustomerRating:       aggregate.CustomerRating(),
		CustomerFeedback:     aggregate.CustomerFeedback(),
		CurrentLongitude:     longitude,
		CurrentLatitude:      latitude,
		LastLocationUpdate:   aggregate.LastLocationUpdate(),
	}
}

// toDomain converts a database DTO to a tracking domain aggregate using
// RestoreTracking.
func toDomain(dto TrackingDTO) (*tracking.Tracking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	personID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.City,
		dto.DeliveryAddress.State,
		dto.DeliveryAddress.Pincode,
		dto.DeliveryAddress.Landmark,
		dto.DeliveryAddress.Phone,
	)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.CurrentLongitude != nil && dto.CurrentLatitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.CurrentLongitude, *dto.CurrentLatitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return tracking.RestoreTracking(
		id,
		orderID,
		personID,
		userID,
		tracking.Status(dto.Status),
		address,
		dto.ExpectedDeliveryTime,
		dto.ActualDeliveryTime,
		tracking.Milestones{
			AssignedAt:       dto.AssignedAt,
			PickedUpAt:       dto.PickedUpAt,
			InTransitAt:      dto.InTransitAt,
			OutForDeliveryAt: dto.OutForDeliveryAt,
			DeliveredAt:      dto.DeliveredAt,
			FailedAt:         dto.FailedAt,
			ReturnedAt:       dto.ReturnedAt,
		},
		dto.DeliveryProof,
		dto.DeliveryNotes,
		tracking.FailureRecord{
			Reason: tracking.FailureReason(dto.FailureReason),
			Notes:  dto.FailureNotes,
		},
		dto.AttemptCount,
		dto.MaxRetries,
		dto.CustomerRating,
		dto.CustomerFeedback,
		location,
		dto.LastLocationUpdate,
	)
}
