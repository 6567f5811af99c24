package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

var ErrZoneNotFound = errors.New("zone not found")

// UpdateZoneCommandHandler handles zone detail updates.
type UpdateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewUpdateZoneCommandHandler creates a handler for zone update operations.
func NewUpdateZoneCommandHandler(uowFactory ZoneUoWFactory) UpdateZoneCommandHandler {
	return UpdateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone update command. Deactivating a zone stops it
// matching new orders; in-flight deliveries finish normally.
func (h UpdateZoneCommandHandler) Handle(ctx context.Context, cmd UpdateZoneCommand) error {
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

	aggregate, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrZoneNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Name(), cmd.City(), cmd.Pincodes(), cmd.Areas()); err != nil {
		return err
	}
	aggregate.SetActive(cmd.IsActive())

	if err = zoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
