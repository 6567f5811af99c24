package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateZoneRequest describes a new delivery zone.
type CreateZoneRequest struct {
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Pincodes []string `json:"pincodes"`
	Areas    []string `json:"areas,omitempty"`
}

// CreateZone handles POST /delivery-zones - creates a delivery zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req CreateZoneRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateZoneCommand(zoneID, req.Name, req.City, req.Pincodes, req.Areas)
	if err != nil {
		return s.badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"zone_id": zoneID.String()})
}

// UpdateZoneRequest replaces a zone's details.
type UpdateZoneRequest struct {
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Pincodes []string `json:"pincodes"`
	Areas    []string `json:"areas,omitempty"`
	IsActive bool     `json:"is_active"`
}

// UpdateZone handles PUT /delivery-zones/:zoneId - updates zone details and
// its active flag.
func (s *Server) UpdateZone(ctx echo.Context) error {
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.badRequest(ctx, "Invalid zone id: "+err.Error())
	}

	var req UpdateZoneRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateZoneCommand(zoneID, req.Name, req.City, req.Pincodes, req.Areas, req.IsActive)
	if err != nil {
		return s.badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.updateZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ZoneStatisticsResponse is the zone statistics view.
type ZoneStatisticsResponse struct {
	ZoneID         string               `json:"zone_id"`
	Name           string               `json:"name"`
	City           string               `json:"city"`
	IsActive       bool                 `json:"is_active"`
	TotalCapacity  int                  `json:"total_capacity"`
	CurrentLoad    int                  `json:"current_load"`
	AvailableSlots int                  `json:"available_slots"`
	Persons        []ZonePersonResponse `json:"persons"`
}

// ZonePersonResponse is one delivery person's standing inside a zone.
type ZonePersonResponse struct {
	DeliveryPersonID string  `json:"delivery_person_id"`
	Name             string  `json:"name"`
	MaxCapacity      int     `json:"max_capacity"`
	CurrentLoad      int     `json:"current_load"`
	AvailableSlots   int     `json:"available_slots"`
	IsActive         bool    `json:"is_active"`
	TotalDeliveries  int     `json:"total_deliveries"`
	SuccessRate      float64 `json:"success_rate"`
}

// GetZoneStatistics handles GET /delivery-zones/:zoneId - retrieves a zone
// with its capacity and per-person statistics.
func (s *Server) GetZoneStatistics(ctx echo.Context) error {
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.badRequest(ctx, "Invalid zone id: "+err.Error())
	}

	query, err := queries.NewGetZoneStatisticsQuery(zoneID)
	if err != nil {
		return s.badRequest(ctx, "Invalid statistics query: "+err.Error())
	}

	stats, err := s.zoneStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	persons := make([]ZonePersonResponse, len(stats.Persons))
	for i, p := range stats.Persons {
		persons[i] = ZonePersonResponse{
			DeliveryPersonID: p.DeliveryPersonID.String(),
			Name:             p.Name,
			MaxCapacity:      p.MaxCapacity,
			CurrentLoad:      p.CurrentLoad,
			AvailableSlots:   p.AvailableSlots,
			IsActive:         p.IsActive,
			TotalDeliveries:  p.TotalDeliveries,
			SuccessRate:      p.SuccessRate,
		}
	}

	return ctx.JSON(http.StatusOK, ZoneStatisticsResponse{
		ZoneID:         stats.ZoneID.String(),
		Name:           stats.Name,
		City:           stats.City,
		IsActive:       stats.IsActive,
		TotalCapacity:  stats.TotalCapacity,
		CurrentLoad:    stats.CurrentLoad,
		AvailableSlots: stats.AvailableSlots,
		Persons:        persons,
	})
}

// AddZoneAssignmentRequest attaches a delivery person to a zone.
type AddZoneAssignmentRequest struct {
	DeliveryPersonID string `json:"delivery_person_id"`
	MaxCapacity      int    `json:"max_capacity"`
}

// AddZoneAssignment handles POST /delivery-zones/:zoneId/assignments -
// attaches a delivery person to the zone with a capacity.
func (s *Server) AddZoneAssignment(ctx echo.Context) error {
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.badRequest(ctx, "Invalid zone id: "+err.Error())
	}

	var req AddZoneAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
	}

	cmd, err := commands.NewAddZoneAssignmentCommand(zoneID, personID, req.MaxCapacity)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.addZoneAssignmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateZoneAssignmentRequest resizes or toggles an existing assignment.
// Omitted fields are left unchanged.
type UpdateZoneAssignmentRequest struct {
	MaxCapacity *int  `json:"max_capacity,omitempty"`
	IsActive    *bool `json:"is_active,omitempty"`
}

// UpdateZoneAssignment handles PUT /delivery-zones/:zoneId/assignments/:personId -
// resizes the assignment's capacity and/or toggles its active flag.
func (s *Server) UpdateZoneAssignment(ctx echo.Context) error {
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.badRequest(ctx, "Invalid zone id: "+err.Error())
	}

	personID, err := pathUUID(ctx, "personId")
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
	}

	var req UpdateZoneAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateZoneAssignmentCommand(zoneID, personID, req.MaxCapacity, req.IsActive)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.updateZoneAssignmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveZoneAssignment handles DELETE /delivery-zones/:zoneId/assignments/:personId -
// detaches a delivery person from the zone.
func (s *Server) RemoveZoneAssignment(ctx echo.Context) error {
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.badRequest(ctx, "Invalid zone id: "+err.Error())
	}

	personID, err := pathUUID(ctx, "personId")
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery person id: "+err.Error())
	}

	cmd, err := commands.NewRemoveZoneAssignmentCommand(zoneID, personID)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.removeZoneAssignmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
