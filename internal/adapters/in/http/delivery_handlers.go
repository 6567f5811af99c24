package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"

	"github.com/labstack/echo/v4"
)

// AssignDeliveryRequest names the delivery person for a manual assignment.
type AssignDeliveryRequest struct {
	DeliveryPersonID string `json:"delivery_person_id"`
}

// AssignDeliveryManually handles PUT /admin/assign-delivery/:orderId -
// assigns a specific delivery person to an order, bypassing the selector.
func (s *Server) AssignDeliveryManually(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AssignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
	}

	cmd, err := commands.NewAssignDeliveryManuallyCommand(orderID, personID)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	result, err := s.assignManuallyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResult(result))
}

// UpdateDeliveryStatusRequest advances a delivery through its lifecycle.
type UpdateDeliveryStatusRequest struct {
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
	Proof            string `json:"proof,omitempty"`
	FailureReason    string `json:"failure_reason,omitempty"`
	DeliveryPersonID string `json:"delivery_person_id,omitempty"`
}

// UpdateDeliveryStatus handles PUT /delivery/update-status/:orderId - the
// courier-facing status update. The acting person must be the one assigned.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	return s.updateDelivery(ctx, false)
}

// AdminUpdateDelivery handles PUT /admin/update-delivery/:orderId - the
// back-office status update, bypassing the assigned-person check.
func (s *Server) AdminUpdateDelivery(ctx echo.Context) error {
	return s.updateDelivery(ctx, true)
}

func (s *Server) updateDelivery(ctx echo.Context, adminOverride bool) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := tracking.StatusFromString(req.Status)
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+err.Error())
	}

	failureReason := tracking.FailureReasonUnknown
	if req.FailureReason != "" {
		failureReason, err = tracking.FailureReasonFromString(req.FailureReason)
		if err != nil {
			return s.badRequest(ctx, "Invalid failure reason: "+err.Error())
		}
	}

	var actorID kernel.UUID
	if req.DeliveryPersonID != "" {
		actorID, err = kernel.UUIDFromString(req.DeliveryPersonID)
		if err != nil {
			return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
		}
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		orderID, status, req.Notes, req.Proof, failureReason, actorID, adminOverride)
	if err != nil {
		return s.badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackingResponse is the public tracking view for one order.
type TrackingResponse struct {
	TrackingID       string `json:"tracking_id"`
	OrderID          string `json:"order_id"`
	DeliveryPersonID string `json:"delivery_person_id"`
	Status           string `json:"status"`

	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`

	ExpectedDeliveryTime *time.Time `json:"expected_delivery_time,omitempty"`
	ActualDeliveryTime   *time.Time `json:"actual_delivery_time,omitempty"`

	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt       *time.Time `json:"picked_up_at,omitempty"`
	InTransitAt      *time.Time `json:"in_transit_at,omitempty"`
	OutForDeliveryAt *time.Time `json:"out_for_delivery_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	FailedAt         *time.Time `json:"failed_at,omitempty"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`

	DeliveryProof string `json:"delivery_proof,omitempty"`
	DeliveryNotes string `json:"delivery_notes,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
	FailureNotes  string `json:"failure_notes,omitempty"`

	AttemptCount   int  `json:"attempt_count"`
	CustomerRating *int `json:"customer_rating,omitempty"`

	CurrentLongitude   *float64   `json:"current_longitude,omitempty"`
	CurrentLatitude    *float64   `json:"current_latitude,omitempty"`
	LastLocationUpdate *time.Time `json:"last_location_update,omitempty"`
}

// GetOrderTracking handles GET /delivery/tracking/:orderId - retrieves the
// tracking record for an order.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid tracking query: "+err.Error())
	}

	view, err := s.orderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingID:           view.TrackingID.String(),
		OrderID:              view.OrderID.String(),
		DeliveryPersonID:     view.DeliveryPersonID.String(),
		Status:               view.Status,
		Street:               view.Street,
		City:                 view.City,
		Pincode:              view.Pincode,
		ExpectedDeliveryTime: view.ExpectedDeliveryTime,
		ActualDeliveryTime:   view.ActualDeliveryTime,
		AssignedAt:           view.AssignedAt,
		PickedUpAt:           view.PickedUpAt,
		InTransitAt:          view.InTransitAt,
		OutForDeliveryAt:     view.OutForDeliveryAt,
		DeliveredAt:          view.DeliveredAt,
		FailedAt:             view.FailedAt,
		ReturnedAt:           view.ReturnedAt,
		DeliveryProof:        view.DeliveryProof,
		DeliveryNotes:        view.DeliveryNotes,
		FailureReason:        view.FailureReason,
		FailureNotes:         view.FailureNotes,
		AttemptCount:         view.AttemptCount,
		CustomerRating:       view.CustomerRating,
		CurrentLongitude:     view.CurrentLongitude,
		CurrentLatitude:      view.CurrentLatitude,
		LastLocationUpdate:   view.LastLocationUpdate,
	})
}

// DeliveryPersonStatsResponse summarizes one courier's delivery history.
type DeliveryPersonStatsResponse struct {
	DeliveryPersonID    string  `json:"delivery_person_id"`
	Name                string  `json:"name"`
	Rating              float64 `json:"rating"`
	TotalDeliveries     int     `json:"total_deliveries"`
	DeliveredDeliveries int     `json:"delivered_deliveries"`
	PendingDeliveries   int     `json:"pending_deliveries"`
	FailedDeliveries    int     `json:"failed_deliveries"`
	SuccessRate         float64 `json:"success_rate"`
}

// GetDeliveryPersonStats handles GET /delivery/stats/:personId - retrieves a
// courier's delivery statistics.
func (s *Server) GetDeliveryPersonStats(ctx echo.Context) error {
	personID, err := pathUUID(ctx, "personId")
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryPersonStatsQuery(personID)
	if err != nil {
		return s.badRequest(ctx, "Invalid stats query: "+err.Error())
	}

	stats, err := s.personStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryPersonStatsResponse{
		DeliveryPersonID:    stats.DeliveryPersonID.String(),
		Name:                stats.Name,
		Rating:              stats.Rating,
		TotalDeliveries:     stats.TotalDeliveries,
		DeliveredDeliveries: stats.DeliveredDeliveries,
		PendingDeliveries:   stats.PendingDeliveries,
		FailedDeliveries:    stats.FailedDeliveries,
		SuccessRate:         stats.SuccessRate,
	})
}

// CreateDeliveryPersonRequest registers a new courier.
type CreateDeliveryPersonRequest struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// CreateDeliveryPerson handles POST /admin/delivery-persons - registers a new
// delivery person linked to an existing user account.
func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	var req CreateDeliveryPersonRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return s.badRequest(ctx, "Invalid user id: "+err.Error())
	}

	vehicleType, err := person.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return s.badRequest(ctx, "Invalid vehicle type: "+err.Error())
	}

	personID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPersonCommand(
		personID, userID, req.Name, req.Phone, vehicleType, req.VehicleNumber)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person data: "+err.Error())
	}

	if handleErr := s.createDeliveryPersonHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"delivery_person_id": personID.String()})
}
