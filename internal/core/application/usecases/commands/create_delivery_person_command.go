package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
	"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
)

// CreateDeliveryPersonCommand registers a new delivery person linked to a
// user account.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	personID      kernel.UUID
	userID        kernel.UUID
	name          string
	phone         string
	vehicleType   person.VehicleType
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a delivery
// person. The vehicle number is optional.
func NewCreateDeliveryPersonCommand(
	personID, userID kernel.UUID,
	name, phone string,
	vehicleType person.VehicleType,
	vehicleNumber string,
) (CreateDeliveryPersonCommand, error) {
	cmd := CreateDeliveryPersonCommand{
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPersonID(personID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryPersonCommandIsNotConstructed if validation fails.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the unique identifier for the delivery person.
func (c CreateDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

// UserID returns the linked user account.
func (c CreateDeliveryPersonCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the person's display name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c CreateDeliveryPersonCommand) Phone() string {
	return c.phone
}

// VehicleType returns the registered vehicle type.
func (c CreateDeliveryPersonCommand) VehicleType() person.VehicleType {
	return c.vehicleType
}

// VehicleNumber returns the optional vehicle registration number.
func (c CreateDeliveryPersonCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *CreateDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}

func (c *CreateDeliveryPersonCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDeliveryPersonCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateDeliveryPersonCommand) setVehicleType(vehicleType person.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
