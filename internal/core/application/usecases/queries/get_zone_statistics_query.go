package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetZoneStatisticsQueryIsNotConstructed = errors.New(
		"GetZoneStatisticsQuery must be created via NewGetZoneStatisticsQuery constructor",
	)
)

// GetZoneStatisticsQuery retrieves a zone together with computed capacity and
// per-person load statistics. Admins use this to see how loaded a zone is and
// who has free slots.
//
// Example:
//
//	query, err := NewGetZoneStatisticsQuery(zoneID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetZoneStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve zone statistics: %w", err)
//	}
//	fmt.Printf("Zone %s: %d/%d slots taken\n", stats.Name, stats.CurrentLoad, stats.TotalCapacity)
type GetZoneStatisticsQuery struct {
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetZoneStatisticsQuery creates a statistics query for one zone.
// The zone ID must be a valid UUID.
func NewGetZoneStatisticsQuery(zoneID kernel.UUID) (GetZoneStatisticsQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return GetZoneStatisticsQuery{}, err
	}

	return GetZoneStatisticsQuery{
		zoneID: zoneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetZoneStatisticsQueryIsNotConstructed if validation fails.
func (q GetZoneStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneStatisticsQueryIsNotConstructed)
}

// ZoneID returns the zone whose statistics are requested.
func (q GetZoneStatisticsQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

// GetZoneStatisticsQueryResponse is the zone statistics read model: the zone's
// identity, aggregate capacity figures, and one row per assigned person.
type GetZoneStatisticsQueryResponse struct {
	ZoneID   kernel.UUID
	Name     string
	City     string
	IsActive bool

	TotalCapacity  int
	CurrentLoad    int
	AvailableSlots int

	Persons []ZonePersonStatistics
}

// ZonePersonStatistics describes one delivery person's standing inside a zone:
// their slot usage here plus their overall success rate.
type ZonePersonStatistics struct {
	DeliveryPersonID kernel.UUID
	Name             string

	MaxCapacity    int
	CurrentLoad    int
	AvailableSlots int
	IsActive       bool

	TotalDeliveries int
	SuccessRate     float64
}
