package person

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the working state of a delivery person.
//
// Active persons are eligible for assignment. Inactive and OnLeave are
// self-service states the person (or an admin) can toggle freely; Suspended
// is entered only through Suspend and left only through Reinstate, so a
// suspension reason is always recorded alongside it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive marks a person as working and eligible for assignment.
	StatusActive

	// StatusInactive marks a person as not currently working.
	StatusInactive

	// StatusSuspended marks a person as administratively suspended.
	StatusSuspended

	// StatusOnLeave marks a person as temporarily away.
	StatusOnLeave
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusSuspended: "suspended",
		StatusOnLeave:   "on_leave",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusSuspended: "suspended",
		StatusOnLeave:   "on_leave",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery person status", s))
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid delivery person status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
