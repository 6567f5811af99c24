package person

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// VehicleType classifies the vehicle a delivery person operates.
// The type is informational for dispatch and payout purposes; the assignment
// selector does not differentiate by vehicle.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBike is a motorcycle.
	VehicleBike

	// VehicleScooter is a scooter or moped.
	VehicleScooter

	// VehicleAuto is an auto rickshaw.
	VehicleAuto

	// VehicleVan is a delivery van.
	VehicleVan

	// VehicleCar is a passenger car.
	VehicleCar
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "unknown",
		VehicleBike:    "bike",
		VehicleScooter: "scooter",
		VehicleAuto:    "auto",
		VehicleVan:     "van",
		VehicleCar:     "car",
	}
}

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleBike:    "bike",
		VehicleScooter: "scooter",
		VehicleAuto:    "auto",
		VehicleVan:     "van",
		VehicleCar:     "car",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
// Returns an error for anything outside bike/scooter/auto/van/car.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks that the value is one of the defined vehicle types.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
