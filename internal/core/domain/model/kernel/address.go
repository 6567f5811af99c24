package kernel

import (
	"strings"

	"dispatch/internal/pkg/errs"
)

// Validation errors for Address construction.
var (
	// ErrCityIsRequired is returned when the city component is empty.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrPincodeIsRequired is returned when the pincode component is empty.
	ErrPincodeIsRequired = errs.NewValueIsRequiredError("pincode")
)

// Address is a value object holding a postal shipping address.
// It is snapshotted onto orders and tracking records at checkout time, so a
// later change to a customer's saved address never rewrites delivery history.
//
// City and pincode are mandatory because zone matching keys on them; the
// remaining components are free-form and optional.
//
// Address is immutable: all fields are private and exposed through accessors.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 MG Road", "Pune", "Maharashtra", "411001", "", "+91-9000000000")
//	if err != nil {
//	    // city or pincode missing
//	}
type Address struct {
	street   string
	city     string
	state    string
	pincode  string
	landmark string
	phone    string
}

// NewAddress creates a validated Address. City and pincode must be non-empty
// after trimming whitespace; street, state, landmark, and phone are optional.
func NewAddress(street, city, state, pincode, landmark, phone string) (Address, error) {
	city = strings.TrimSpace(city)
	pincode = strings.TrimSpace(pincode)

	if city == "" {
		return Address{}, ErrCityIsRequired
	}
	if pincode == "" {
		return Address{}, ErrPincodeIsRequired
	}

	return Address{
		street:   strings.TrimSpace(street),
		city:     city,
		state:    strings.TrimSpace(state),
		pincode:  pincode,
		landmark: strings.TrimSpace(landmark),
		phone:    strings.TrimSpace(phone),
	}, nil
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// City returns the city component. Guaranteed non-empty for valid addresses.
func (a Address) City() string {
	return a.city
}

// State returns the state component.
func (a Address) State() string {
	return a.state
}

// Pincode returns the postal code component. Guaranteed non-empty for valid addresses.
func (a Address) Pincode() string {
	return a.pincode
}

// Landmark returns the optional landmark hint.
func (a Address) Landmark() string {
	return a.landmark
}

// Phone returns the contact phone captured with the address.
func (a Address) Phone() string {
	return a.phone
}

// CityEquals compares the address city case-insensitively.
// Zone matching uses this so "pune" and "Pune" resolve to the same zone.
func (a Address) CityEquals(city string) bool {
	return strings.EqualFold(a.city, strings.TrimSpace(city))
}

// IsEqual reports whether two addresses hold identical components.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Validate returns an error when the address is a zero value or lost its
// mandatory components. Used when reconstructing snapshots from persistence.
func (a Address) Validate() error {
	if a.city == "" {
		return ErrCityIsRequired
	}
	if a.pincode == "" {
		return ErrPincodeIsRequired
	}
	return nil
}
