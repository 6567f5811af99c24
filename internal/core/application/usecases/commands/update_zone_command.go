package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateZoneCommandIsNotConstructed = errors.New(
	"UpdateZoneCommand must be created via NewUpdateZoneCommand constructor",
)

// UpdateZoneCommand replaces a zone's details and active flag. Assignments
// are managed through their own commands and are untouched here.
type UpdateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID   kernel.UUID
	name     string
	city     string
	pincodes []string
	areas    []string
	isActive bool

	guard guard.ConstructorGuard
}

// NewUpdateZoneCommand creates a command to update a zone's details.
func NewUpdateZoneCommand(
	zoneID kernel.UUID,
	name, city string,
	pincodes, areas []string,
	isActive bool,
) (UpdateZoneCommand, error) {
	cmd := UpdateZoneCommand{
		areas:    areas,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.setCity(city),
		cmd.setPincodes(pincodes),
	); err != nil {
		return UpdateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateZoneCommandIsNotConstructed if validation fails.
func (c UpdateZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneCommandIsNotConstructed)
}

// ZoneID returns the zone to update.
func (c UpdateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the new display name.
func (c UpdateZoneCommand) Name() string {
	return c.name
}

// City returns the new city.
func (c UpdateZoneCommand) City() string {
	return c.city
}

// Pincodes returns the new pincode set.
func (c UpdateZoneCommand) Pincodes() []string {
	return c.pincodes
}

// Areas returns the new area labels.
func (c UpdateZoneCommand) Areas() []string {
	return c.areas
}

// IsActive returns the new active flag.
func (c UpdateZoneCommand) IsActive() bool {
	return c.isActive
}

func (c *UpdateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *UpdateZoneCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateZoneCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *UpdateZoneCommand) setPincodes(pincodes []string) error {
	if len(pincodes) == 0 {
		return errs.NewValueIsRequiredError("pincodes")
	}

	c.pincodes = pincodes
	return nil
}
