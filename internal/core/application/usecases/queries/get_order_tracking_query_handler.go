package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler retrieves tracking information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query to retrieve the tracking record for one order.
// Returns an object-not-found error when the order has no tracking record yet.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	var resp GetOrderTrackingQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			delivery_person_id,
			status,
			delivery_street,
			delivery_city,
			delivery_pincode,
			expected_delivery_time,
			actual_delivery_time,
			assigned_at,
			picked_up_at,
			in_transit_at,
			out_for_delivery_at,
			delivered_at,
			failed_at,
			returned_at,
			delivery_proof,
			delivery_notes,
			failure_reason,
			failure_notes,
			attempt_count,
			customer_rating,
			current_longitude,
			current_latitude,
			last_location_update
		FROM trackings
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("tracking", query.OrderID().String())
	}

	var trackingID, orderID, personID uuid.UUID
	var status, failureReason int

	err = rows.Scan(
		&trackingID,
		&orderID,
		&personID,
		&status,
		&resp.Street,
		&resp.City,
		&resp.Pincode,
		&resp.ExpectedDeliveryTime,
		&resp.ActualDeliveryTime,
		&resp.AssignedAt,
		&resp.PickedUpAt,
		&resp.InTransitAt,
		&resp.OutForDeliveryAt,
		&resp.DeliveredAt,
		&resp.FailedAt,
		&resp.ReturnedAt,
		&resp.DeliveryProof,
		&resp.DeliveryNotes,
		&failureReason,
		&resp.FailureNotes,
		&resp.AttemptCount,
		&resp.CustomerRating,
		&resp.CurrentLongitude,
		&resp.CurrentLatitude,
		&resp.LastLocationUpdate,
	)
	if err != nil {
		return resp, err
	}

	if resp.TrackingID, err = kernel.UUIDFromBytes(trackingID[:]); err != nil {
		return resp, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return resp, err
	}
	if resp.DeliveryPersonID, err = kernel.UUIDFromBytes(personID[:]); err != nil {
		return resp, err
	}

	resp.Status = tracking.Status(status).String()
	if reason := tracking.FailureReason(failureReason); reason != tracking.FailureReasonUnknown {
		resp.FailureReason = reason.String()
	}

	return resp, rows.Err()
}
