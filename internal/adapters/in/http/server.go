// Package http is the inbound HTTP adapter. It exposes the checkout,
// delivery, and zone administration operations over an Echo server and
// translates application errors into the API's status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	assignManuallyHandler       commands.AssignDeliveryManuallyCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler
	createZoneHandler           commands.CreateZoneCommandHandler
	updateZoneHandler           commands.UpdateZoneCommandHandler
	addZoneAssignmentHandler    commands.AddZoneAssignmentCommandHandler
	updateZoneAssignmentHandler commands.UpdateZoneAssignmentCommandHandler
	removeZoneAssignmentHandler commands.RemoveZoneAssignmentCommandHandler

	// Query handlers
	orderTrackingHandler    queries.GetOrderTrackingQueryHandler
	personStatsHandler      queries.GetDeliveryPersonStatsQueryHandler
	zoneStatisticsHandler   queries.GetZoneStatisticsQueryHandler
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	assignManuallyHandler commands.AssignDeliveryManuallyCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	updateZoneHandler commands.UpdateZoneCommandHandler,
	addZoneAssignmentHandler commands.AddZoneAssignmentCommandHandler,
	updateZoneAssignmentHandler commands.UpdateZoneAssignmentCommandHandler,
	removeZoneAssignmentHandler commands.RemoveZoneAssignmentCommandHandler,
	orderTrackingHandler queries.GetOrderTrackingQueryHandler,
	personStatsHandler queries.GetDeliveryPersonStatsQueryHandler,
	zoneStatisticsHandler queries.GetZoneStatisticsQueryHandler,
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		assignManuallyHandler:       assignManuallyHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		createDeliveryPersonHandler: createDeliveryPersonHandler,
		createZoneHandler:           createZoneHandler,
		updateZoneHandler:           updateZoneHandler,
		addZoneAssignmentHandler:    addZoneAssignmentHandler,
		updateZoneAssignmentHandler: updateZoneAssignmentHandler,
		removeZoneAssignmentHandler: removeZoneAssignmentHandler,
		orderTrackingHandler:        orderTrackingHandler,
		personStatsHandler:          personStatsHandler,
		zoneStatisticsHandler:       zoneStatisticsHandler,
		unassignedOrdersHandler:     unassignedOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders/create", s.CreateOrder)
	e.GET("/delivery/tracking/:orderId", s.GetOrderTracking)
	e.PUT("/delivery/update-status/:orderId", s.UpdateDeliveryStatus)
	e.GET("/delivery/stats/:personId", s.GetDeliveryPersonStats)

	e.PUT("/admin/assign-delivery/:orderId", s.AssignDeliveryManually)
	e.PUT("/admin/update-delivery/:orderId", s.AdminUpdateDelivery)
	e.GET("/admin/unassigned-orders", s.GetUnassignedOrders)
	e.POST("/admin/delivery-persons", s.CreateDeliveryPerson)

	e.POST("/delivery-zones", s.CreateZone)
	e.PUT("/delivery-zones/:zoneId", s.UpdateZone)
	e.GET("/delivery-zones/:zoneId", s.GetZoneStatistics)
	e.POST("/delivery-zones/:zoneId/assignments", s.AddZoneAssignment)
	e.PUT("/delivery-zones/:zoneId/assignments/:personId", s.UpdateZoneAssignment)
	e.DELETE("/delivery-zones/:zoneId/assignments/:personId", s.RemoveZoneAssignment)
}

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// handleError maps an application error onto the API's status codes:
// validation failures to 400, missing objects to 404, authorization failures
// to 403, and business-state conflicts to 409. Anything unrecognized is a 500.
func (s *Server) handleError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrActorIsRequired),
		errors.Is(err, commands.ErrStatusNotUpdatable):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrPersonNotFound),
		errors.Is(err, commands.ErrZoneNotFound),
		errors.Is(err, commands.ErrTrackingNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrActorNotAssigned):
		code = http.StatusForbidden
	case errors.Is(err, commands.ErrTrackingAlreadyExists),
		errors.Is(err, commands.ErrPersonUnavailable),
		errors.Is(err, commands.ErrPersonNotAssignedToZone):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
