package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// AddZoneAssignmentCommandHandler handles placing delivery persons into
// zones. Verifies the person exists before mutating the zone; the person's
// linked user account is copied onto the assignment.
type AddZoneAssignmentCommandHandler struct {
	uowFactory ZonePersonUoWFactory
}

// NewAddZoneAssignmentCommandHandler creates a handler for zone assignment
// operations.
func NewAddZoneAssignmentCommandHandler(uowFactory ZonePersonUoWFactory) AddZoneAssignmentCommandHandler {
	return AddZoneAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. A person can hold at most one
// assignment per zone; duplicates are rejected by the zone aggregate.
func (h AddZoneAssignmentCommandHandler) Handle(ctx context.Context, cmd AddZoneAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courier, err := uow.DeliveryPersonRepository().Get(ctx, cmd.DeliveryPersonID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPersonNotFound
	}
	if err != nil {
		return err
	}

	zoneRepo := uow.ZoneRepository()

	aggregate, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrZoneNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.AddAssignment(courier.ID(), courier.UserID(), cmd.MaxCapacity()); err != nil {
		return err
	}

	if err = zoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
