package commands

import (
	"context"

	"dispatch/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles zone registration.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command. The new zone starts active with
// no assignments.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
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

	aggregate, err := zone.NewZone(cmd.ZoneID(), cmd.Name(), cmd.City(), cmd.Pincodes(), cmd.Areas())
	if err != nil {
		return err
	}

	if err = uow.ZoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
