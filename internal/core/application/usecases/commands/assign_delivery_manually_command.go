package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDeliveryManuallyCommandIsNotConstructed = errors.New(
	"AssignDeliveryManuallyCommand must be created via NewAssignDeliveryManuallyCommand constructor",
)

// AssignDeliveryManuallyCommand requests assignment of an order to a specific
// delivery person, bypassing the automatic selector. Admin-only.
type AssignDeliveryManuallyCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryManuallyCommand creates a command to hand the order to the
// given delivery person.
func NewAssignDeliveryManuallyCommand(orderID, deliveryPersonID kernel.UUID) (AssignDeliveryManuallyCommand, error) {
	cmd := AssignDeliveryManuallyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return AssignDeliveryManuallyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryManuallyCommandIsNotConstructed if validation fails.
func (c AssignDeliveryManuallyCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryManuallyCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDeliveryManuallyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the chosen delivery person.
func (c AssignDeliveryManuallyCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *AssignDeliveryManuallyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryManuallyCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
