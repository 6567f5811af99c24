package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveZoneAssignmentCommandIsNotConstructed = errors.New(
	"RemoveZoneAssignmentCommand must be created via NewRemoveZoneAssignmentCommand constructor",
)

// RemoveZoneAssignmentCommand removes a delivery person's assignment from a
// zone.
type RemoveZoneAssignmentCommand struct { //nolint:recvcheck //using for validation
	zoneID           kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveZoneAssignmentCommand creates a command to remove the person's
// assignment from the zone.
func NewRemoveZoneAssignmentCommand(zoneID, deliveryPersonID kernel.UUID) (RemoveZoneAssignmentCommand, error) {
	cmd := RemoveZoneAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return RemoveZoneAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveZoneAssignmentCommandIsNotConstructed if validation fails.
func (c RemoveZoneAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveZoneAssignmentCommandIsNotConstructed)
}

// ZoneID returns the target zone.
func (c RemoveZoneAssignmentCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// DeliveryPersonID returns the person whose assignment is removed.
func (c RemoveZoneAssignmentCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *RemoveZoneAssignmentCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *RemoveZoneAssignmentCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
