package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateZoneAssignmentCommandIsNotConstructed = errors.New(
		"UpdateZoneAssignmentCommand must be created via NewUpdateZoneAssignmentCommand constructor",
	)
	// ErrNothingToUpdate is returned when neither a capacity nor an active
	// flag change was requested.
	ErrNothingToUpdate = errors.New("no assignment changes requested")
)

// UpdateZoneAssignmentCommand resizes a zone assignment's capacity and/or
// toggles whether it accepts new deliveries. Both fields are optional but at
// least one must be present.
type UpdateZoneAssignmentCommand struct { //nolint:recvcheck //using for validation
	zoneID           kernel.UUID
	deliveryPersonID kernel.UUID
	maxCapacity      *int
	isActive         *bool

	guard guard.ConstructorGuard
}

// NewUpdateZoneAssignmentCommand creates a command to change an assignment's
// capacity and/or active flag.
func NewUpdateZoneAssignmentCommand(
	zoneID, deliveryPersonID kernel.UUID,
	maxCapacity *int,
	isActive *bool,
) (UpdateZoneAssignmentCommand, error) {
	cmd := UpdateZoneAssignmentCommand{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setMaxCapacity(maxCapacity),
	); err != nil {
		return UpdateZoneAssignmentCommand{}, err
	}

	if cmd.maxCapacity == nil && cmd.isActive == nil {
		return UpdateZoneAssignmentCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateZoneAssignmentCommandIsNotConstructed if validation fails.
func (c UpdateZoneAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneAssignmentCommandIsNotConstructed)
}

// ZoneID returns the target zone.
func (c UpdateZoneAssignmentCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// DeliveryPersonID returns the person whose assignment changes.
func (c UpdateZoneAssignmentCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// MaxCapacity returns the requested capacity, nil when unchanged.
func (c UpdateZoneAssignmentCommand) MaxCapacity() *int {
	return c.maxCapacity
}

// IsActive returns the requested active flag, nil when unchanged.
func (c UpdateZoneAssignmentCommand) IsActive() *bool {
	return c.isActive
}

func (c *UpdateZoneAssignmentCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *UpdateZoneAssignmentCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *UpdateZoneAssignmentCommand) setMaxCapacity(maxCapacity *int) error {
	if maxCapacity == nil {
		return nil
	}
	if *maxCapacity < 1 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", *maxCapacity, 1, "unbounded")
	}

	c.maxCapacity = maxCapacity
	return nil
}
