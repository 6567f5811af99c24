package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand registers a new delivery zone covering a set of pincodes
// within a city.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID   kernel.UUID
	name     string
	city     string
	pincodes []string
	areas    []string

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone.
// Name, city, and at least one pincode are required; areas are optional
// labels.
func NewCreateZoneCommand(zoneID kernel.UUID, name, city string, pincodes, areas []string) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		areas: areas,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.setCity(city),
		cmd.setPincodes(pincodes),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateZoneCommandIsNotConstructed if validation fails.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone's display name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// City returns the city the zone belongs to.
func (c CreateZoneCommand) City() string {
	return c.city
}

// Pincodes returns the pincodes the zone covers.
func (c CreateZoneCommand) Pincodes() []string {
	return c.pincodes
}

// Areas returns the optional area labels.
func (c CreateZoneCommand) Areas() []string {
	return c.areas
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateZoneCommand) setPincodes(pincodes []string) error {
	if len(pincodes) == 0 {
		return errs.NewValueIsRequiredError("pincodes")
	}

	c.pincodes = pincodes
	return nil
}
