// Package personrepo provides data transfer objects and mapping functions for
// delivery person persistence. This package implements the repository pattern
// for the delivery person domain aggregate, handling the conversion between
// domain entities and database representations.
package personrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"

	"github.com/google/uuid"
)

// DeliveryPersonDTO represents the database structure for persisting delivery
// person aggregates, including sanction state and performance counters.
type DeliveryPersonDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32);not null"`
	VehicleType   int       `gorm:"type:smallint;not null"`
	VehicleNumber string    `gorm:"type:varchar(32)"`
	Status        int       `gorm:"type:smallint;not null;index"`

	IsBanned      bool `gorm:"not null"`
	BannedAt      *time.Time
	BanReason     string `gorm:"type:text"`
	IsSuspended   bool   `gorm:"not null"`
	SuspendedAt   *time.Time
	SuspendReason string `gorm:"type:text"`

	Rating               float64 `gorm:"type:numeric(3,2);not null"`
	TotalDeliveries      int     `gorm:"type:int;not null"`
	SuccessfulDeliveries int     `gorm:"type:int;not null"`
	FailedDeliveries     int     `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery person entities.
func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

// fromDomain converts a delivery person domain aggregate to its database representation.
func fromDomain(aggregate *person.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:                   aggregate.ID().Bytes(),
		UserID:               aggregate.UserID().Bytes(),
		Name:                 aggregate.Name(),
		Phone:                aggregate.Phone(),
		VehicleType:          int(aggregate.VehicleType()),
		VehicleNumber:        aggregate.VehicleNumber(),
		Status:               int(aggregate.Status()),
		IsBanned:             aggregate.IsBanned(),
		BannedAt:             aggregate.BannedAt(),
		BanReason:            aggregate.BanReason(),
		IsSuspended:          aggregate.IsSuspended(),
		SuspendedAt:          aggregate.SuspendedAt(),
		SuspendReason:        aggregate.SuspendReason(),
		Rating:               aggregate.Rating(),
		TotalDeliveries:      aggregate.TotalDeliveries(),
		SuccessfulDeliveries: aggregate.SuccessfulDeliveries(),
		FailedDeliveries:     aggregate.FailedDeliveries(),
	}
}

// toDomain converts a database DTO to a delivery person domain aggregate
// using RestoreDeliveryPerson.
func toDomain(dto DeliveryPersonDTO) (*person.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return person.RestoreDeliveryPerson(
		id,
		userID,
		dto.Name,
		dto.Phone,
		person.VehicleType(dto.VehicleType),
		dto.VehicleNumber,
		person.Status(dto.Status),
		person.Sanctions{
			IsBanned:      dto.IsBanned,
			BannedAt:      dto.BannedAt,
			BanReason:     dto.BanReason,
			IsSuspended:   dto.IsSuspended,
			SuspendedAt:   dto.SuspendedAt,
			SuspendReason: dto.SuspendReason,
		},
		dto.Rating,
		dto.TotalDeliveries,
		dto.SuccessfulDeliveries,
		dto.FailedDeliveries,
	)
}
