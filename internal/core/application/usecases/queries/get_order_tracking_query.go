package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery retrieves the delivery tracking read model for one
// order. This backs the customer-facing tracking page.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderTrackingQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve tracking: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", view.OrderID, view.Status)
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for one order's tracking record.
// The order ID must be a valid UUID.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order whose tracking record is requested.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTrackingQueryResponse is the tracking read model for one order:
// current status, the courier handling it, milestone timestamps, and outcome
// details when the delivery concluded.
type GetOrderTrackingQueryResponse struct {
	TrackingID       kernel.UUID
	OrderID          kernel.UUID
	DeliveryPersonID kernel.UUID
	Status           string

	Street  string
	City    string
	Pincode string

	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time

	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time
	ReturnedAt       *time.Time

	DeliveryProof string
	DeliveryNotes string
	FailureReason string
	FailureNotes  string

	AttemptCount   int
	CustomerRating *int

	CurrentLongitude   *float64
	CurrentLatitude    *float64
	LastLocationUpdate *time.Time
}
