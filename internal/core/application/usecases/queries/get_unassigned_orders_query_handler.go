package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves pending unassigned orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders without a delivery
// person. Results are sorted by order ID for consistent output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			shipping_street,
			shipping_city,
			shipping_pincode,
			total_amount,
			payment_method
		FROM orders
		WHERE status = ? AND delivery_person_id IS NULL
		ORDER BY id
	`, int(order.StatusPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedOrdersQueryResponse
		var id, userID uuid.UUID
		var paymentMethod int

		err = rows.Scan(
			&id,
			&userID,
			&resp.Street,
			&resp.City,
			&resp.Pincode,
			&resp.TotalAmount,
			&paymentMethod,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		customerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.UserID = customerID

		resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
