package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetZoneStatisticsQueryHandler retrieves zone statistics from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetZoneStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetZoneStatisticsQueryHandler creates a handler for zone statistics queries.
// Requires a GORM database connection for query execution.
func NewGetZoneStatisticsQueryHandler(db *gorm.DB) GetZoneStatisticsQueryHandler {
	return GetZoneStatisticsQueryHandler{db: db}
}

// Handle executes the query to retrieve one zone with per-person capacity and
// load figures. Capacity totals are computed over the zone's assignments.
func (h GetZoneStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetZoneStatisticsQuery,
) (GetZoneStatisticsQueryResponse, error) {
	var resp GetZoneStatisticsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT name, city, is_active
		FROM zones
		WHERE id = ?
	`, query.ZoneID().Bytes()).Row().Scan(&resp.Name, &resp.City, &resp.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundError("zone", query.ZoneID().String())
		}
		return resp, err
	}
	resp.ZoneID = query.ZoneID()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.delivery_person_id,
			p.name,
			a.max_capacity,
			a.current_load,
			a.is_active,
			p.total_deliveries,
			p.successful_deliveries
		FROM zone_assignments a
		JOIN delivery_persons p ON p.id = a.delivery_person_id
		WHERE a.zone_id = ?
		ORDER BY p.name
	`, query.ZoneID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	resp.Persons = make([]ZonePersonStatistics, 0)

	for rows.Next() {
		var stats ZonePersonStatistics
		var personID uuid.UUID
		var totalDeliveries, successfulDeliveries int

		err = rows.Scan(
			&personID,
			&stats.Name,
			&stats.MaxCapacity,
			&stats.CurrentLoad,
			&stats.IsActive,
			&totalDeliveries,
			&successfulDeliveries,
		)
		if err != nil {
			return resp, err
		}

		stats.DeliveryPersonID, err = kernel.UUIDFromBytes(personID[:])
		if err != nil {
			return resp, err
		}

		stats.AvailableSlots = stats.MaxCapacity - stats.CurrentLoad
		stats.TotalDeliveries = totalDeliveries
		if totalDeliveries > 0 {
			stats.SuccessRate = float64(successfulDeliveries) / float64(totalDeliveries)
		}

		resp.TotalCapacity += stats.MaxCapacity
		resp.CurrentLoad += stats.CurrentLoad
		resp.Persons = append(resp.Persons, stats)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	resp.AvailableSlots = resp.TotalCapacity - resp.CurrentLoad
	return resp, nil
}
