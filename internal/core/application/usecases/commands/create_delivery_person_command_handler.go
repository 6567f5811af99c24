package commands

import (
	"context"

	"dispatch/internal/core/domain/model/person"
)

// CreateDeliveryPersonCommandHandler handles delivery person registration.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory PersonUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for delivery person
// registration operations.
func NewCreateDeliveryPersonCommandHandler(uowFactory PersonUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The new person starts Active
// with zeroed performance counters and takes orders once assigned to a zone.
func (h CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPersonCommand) error {
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

	courier, err := person.NewDeliveryPerson(
		cmd.PersonID(), cmd.UserID(), cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return err
	}

	if number := cmd.VehicleNumber(); number != "" {
		courier.SetVehicleNumber(number)
	}

	if err = uow.DeliveryPersonRepository().Add(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
