package tracking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// FailureReason classifies why a delivery attempt failed.
type FailureReason int

const (
	// FailureReasonUnknown represents an invalid or undefined reason.
	FailureReasonUnknown FailureReason = iota

	// FailureCustomerNotAvailable means nobody answered at the address.
	FailureCustomerNotAvailable

	// FailureAddressNotFound means the courier could not locate the address.
	FailureAddressNotFound

	// FailureVehicleBreakdown means the courier's vehicle broke down.
	FailureVehicleBreakdown

	// FailureBadWeather means weather made the delivery unsafe.
	FailureBadWeather

	// FailureOther covers reasons outside the fixed set; details go in the
	// failure notes.
	FailureOther
)

func getFailureReasonStrings() map[FailureReason]string {
	return map[FailureReason]string{
		FailureReasonUnknown:        "unknown",
		FailureCustomerNotAvailable: "customer_not_available",
		FailureAddressNotFound:      "address_not_found",
		FailureVehicleBreakdown:     "vehicle_breakdown",
		FailureBadWeather:           "bad_weather",
		FailureOther:                "other",
	}
}

func getValidFailureReasonStrings() map[FailureReason]string {
	//nolint:exhaustive // FailureReasonUnknown is intentionally excluded as it's invalid
	return map[FailureReason]string{
		FailureCustomerNotAvailable: "customer_not_available",
		FailureAddressNotFound:      "address_not_found",
		FailureVehicleBreakdown:     "vehicle_breakdown",
		FailureBadWeather:           "bad_weather",
		FailureOther:                "other",
	}
}

// FailureReasonFromString parses the wire representation of a failure reason.
func FailureReasonFromString(s string) (FailureReason, error) {
	for r, str := range getValidFailureReasonStrings() {
		if str == s {
			return r, nil
		}
	}
	return FailureReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"failureReason", fmt.Errorf("%q is not a valid failure reason", s))
}

// Validate checks that the value is one of the defined failure reasons.
func (r FailureReason) Validate() error {
	if _, ok := getValidFailureReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"failureReason", fmt.Errorf("%d is not a valid failure reason", r))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (r FailureReason) String() string {
	if str, ok := getFailureReasonStrings()[r]; ok {
		return str
	}
	return "unknown"
}
