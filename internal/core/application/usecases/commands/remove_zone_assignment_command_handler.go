package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// RemoveZoneAssignmentCommandHandler handles removal of zone assignments.
// The zone row is locked so a concurrent assignment cannot add load to the
// assignment while it is being removed.
type RemoveZoneAssignmentCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewRemoveZoneAssignmentCommandHandler creates a handler for assignment
// removal operations.
func NewRemoveZoneAssignmentCommandHandler(uowFactory ZoneUoWFactory) RemoveZoneAssignmentCommandHandler {
	return RemoveZoneAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. In-flight deliveries are unaffected:
// their conclusion simply finds no slot to free.
func (h RemoveZoneAssignmentCommandHandler) Handle(ctx context.Context, cmd RemoveZoneAssignmentCommand) error {
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

	zoneRepo := uow.ZoneRepository()

	aggregate, err := zoneRepo.GetForUpdate(ctx, cmd.ZoneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrZoneNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.RemoveAssignment(cmd.DeliveryPersonID()); err != nil {
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
