package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAddZoneAssignmentCommandIsNotConstructed = errors.New(
	"AddZoneAssignmentCommand must be created via NewAddZoneAssignmentCommand constructor",
)

// AddZoneAssignmentCommand places a delivery person into a zone with a
// concurrent delivery limit.
type AddZoneAssignmentCommand struct { //nolint:recvcheck //using for validation
	zoneID           kernel.UUID
	deliveryPersonID kernel.UUID
	maxCapacity      int

	guard guard.ConstructorGuard
}

// NewAddZoneAssignmentCommand creates a command to assign a delivery person
// to a zone. The capacity must be at least 1.
func NewAddZoneAssignmentCommand(
	zoneID, deliveryPersonID kernel.UUID,
	maxCapacity int,
) (AddZoneAssignmentCommand, error) {
	cmd := AddZoneAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setMaxCapacity(maxCapacity),
	); err != nil {
		return AddZoneAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddZoneAssignmentCommandIsNotConstructed if validation fails.
func (c AddZoneAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAddZoneAssignmentCommandIsNotConstructed)
}

// ZoneID returns the target zone.
func (c AddZoneAssignmentCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// DeliveryPersonID returns the person to assign.
func (c AddZoneAssignmentCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// MaxCapacity returns the concurrent delivery limit.
func (c AddZoneAssignmentCommand) MaxCapacity() int {
	return c.maxCapacity
}

func (c *AddZoneAssignmentCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *AddZoneAssignmentCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *AddZoneAssignmentCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 1 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}

	c.maxCapacity = maxCapacity
	return nil
}
