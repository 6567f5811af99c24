package queries

import (
	"context"

	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryPersonStatsQueryHandler computes delivery statistics from the
// database. Counting happens in SQL so the handler never loads tracking
// history into memory.
type GetDeliveryPersonStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonStatsQueryHandler creates a handler for stats queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryPersonStatsQueryHandler(db *gorm.DB) GetDeliveryPersonStatsQueryHandler {
	return GetDeliveryPersonStatsQueryHandler{db: db}
}

// Handle executes the query to compute one courier's delivery statistics.
// A returned delivery counts as failed; pending covers everything still in
// flight. Returns an object-not-found error for an unknown person.
func (h GetDeliveryPersonStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonStatsQuery,
) (GetDeliveryPersonStatsQueryResponse, error) {
	var resp GetDeliveryPersonStatsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.name,
			p.rating,
			COUNT(t.id) AS total,
			COUNT(t.id) FILTER (WHERE t.status = ?) AS delivered,
			COUNT(t.id) FILTER (WHERE t.status IN (?, ?)) AS failed,
			COUNT(t.id) FILTER (WHERE t.status NOT IN (?, ?, ?)) AS pending
		FROM delivery_persons p
		LEFT JOIN trackings t ON t.delivery_person_id = p.id
		WHERE p.id = ?
		GROUP BY p.name, p.rating
	`,
		int(tracking.StatusDelivered),
		int(tracking.StatusFailed), int(tracking.StatusReturned),
		int(tracking.StatusDelivered), int(tracking.StatusFailed), int(tracking.StatusReturned),
		query.DeliveryPersonID().Bytes(),
	).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("delivery person", query.DeliveryPersonID().String())
	}

	err = rows.Scan(
		&resp.Name,
		&resp.Rating,
		&resp.TotalDeliveries,
		&resp.DeliveredDeliveries,
		&resp.FailedDeliveries,
		&resp.PendingDeliveries,
	)
	if err != nil {
		return resp, err
	}

	resp.DeliveryPersonID = query.DeliveryPersonID()

	if concluded := resp.DeliveredDeliveries + resp.FailedDeliveries; concluded > 0 {
		resp.SuccessRate = float64(resp.DeliveredDeliveries) / float64(concluded)
	}

	return resp, rows.Err()
}
