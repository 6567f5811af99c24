package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// UpdateZoneAssignmentCommandHandler handles capacity resizes and pauses of
// zone assignments. The zone row is locked so the resize cannot race a
// concurrent assignment: shrinking below the current load is rejected by the
// aggregate against the locked state.
type UpdateZoneAssignmentCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewUpdateZoneAssignmentCommandHandler creates a handler for assignment
// update operations.
func NewUpdateZoneAssignmentCommandHandler(uowFactory ZoneUoWFactory) UpdateZoneAssignmentCommandHandler {
	return UpdateZoneAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment update command.
func (h UpdateZoneAssignmentCommandHandler) Handle(ctx context.Context, cmd UpdateZoneAssignmentCommand) error {
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

	if capacity := cmd.MaxCapacity(); capacity != nil {
		if err = aggregate.SetAssignmentCapacity(cmd.DeliveryPersonID(), *capacity); err != nil {
			return err
		}
	}
	if active := cmd.IsActive(); active != nil {
		if err = aggregate.SetAssignmentActive(cmd.DeliveryPersonID(), *active); err != nil {
			return err
		}
	}

	if err = zoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
