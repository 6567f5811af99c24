// Package zonerepo provides data transfer objects and mapping functions for zone persistence.
// This package implements the repository pattern for the zone domain aggregate, handling
// the conversion between domain entities and database representations.
package zonerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
// Covered pincodes and area names are stored as JSON arrays; membership
// filtering happens in memory after narrowing by city.
type ZoneDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	City        string          `gorm:"type:varchar(128);not null;index"`
	Pincodes    []string        `gorm:"serializer:json;type:jsonb;not null"`
	Areas       []string        `gorm:"serializer:json;type:jsonb"`
	IsActive    bool            `gorm:"not null;index"`
	Assignments []AssignmentDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

// AssignmentDTO represents a delivery person's membership in a zone together
// with their capacity and live load. One row per (zone, person) pair.
type AssignmentDTO struct {
	ZoneID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null"`
	MaxCapacity      int       `gorm:"type:int;not null"`
	CurrentLoad      int       `gorm:"type:int;not null"`
	IsActive         bool      `gorm:"not null"`
}

// TableName specifies the database table name for zone assignments.
func (AssignmentDTO) TableName() string {
	return "zone_assignments"
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) ZoneDTO {
	zoneID := aggregate.ID().Bytes()

	assignments := make([]AssignmentDTO, 0, len(aggregate.Assignments()))
	for _, a := range aggregate.Assignments() {
		assignments = append(assignments, AssignmentDTO{
			ZoneID:           zoneID,
			DeliveryPersonID: a.DeliveryPersonID().Bytes(),
			UserID:           a.UserID().Bytes(),
			MaxCapacity:      a.MaxCapacity(),
			CurrentLoad:      a.CurrentLoad(),
			IsActive:         a.IsActive(),
		})
	}

	return ZoneDTO{
		ID:          zoneID,
		Name:        aggregate.Name(),
		City:        aggregate.City(),
		Pincodes:    aggregate.Pincodes(),
		Areas:       aggregate.Areas(),
		IsActive:    aggregate.IsActive(),
		Assignments: assignments,
	}
}

// toDomain converts a database DTO to a zone domain aggregate.
// Reconstructs the complete aggregate including all assignments using RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignments := make([]*zone.Assignment, 0, len(dto.Assignments))
	for _, aDTO := range dto.Assignments {
		a, aErr := assignmentToDomain(aDTO)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return zone.RestoreZone(id, dto.Name, dto.City, dto.Pincodes, dto.Areas, assignments, dto.IsActive)
}

// assignmentToDomain converts an assignment DTO to its domain entity.
func assignmentToDomain(dto AssignmentDTO) (*zone.Assignment, error) {
	personID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return zone.RestoreAssignment(personID, userID, dto.MaxCapacity, dto.CurrentLoad, dto.IsActive)
}
