package tracking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the delivery progress of a tracked order.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	                                                          │
//	                                                          └──> Failed ──> Returned
//
// The table is the single source of truth for legal moves: every status
// update goes through TransitionTo, and Returned is reachable only from
// Failed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the tracking record exists but no courier holds it yet.
	StatusPending

	// StatusAssigned means a delivery person accepted the order.
	StatusAssigned

	// StatusPickedUp means the parcel was collected from the warehouse.
	StatusPickedUp

	// StatusInTransit means the parcel is moving through the network.
	StatusInTransit

	// StatusOutForDelivery means the courier is on the final leg.
	StatusOutForDelivery

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusFailed means the delivery attempt did not complete.
	StatusFailed

	// StatusReturned means the failed parcel went back to the warehouse.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusAssigned:       "assigned",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusFailed:         "failed",
		StatusReturned:       "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusAssigned:       "assigned",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusFailed:         "failed",
		StatusReturned:       "returned",
	}
}

func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusAssigned},
		StatusAssigned:       {StatusPickedUp},
		StatusPickedUp:       {StatusInTransit},
		StatusInTransit:      {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered, StatusFailed},
		StatusDelivered:      {},
		StatusFailed:         {StatusReturned},
		StatusReturned:       {},
	}
}

// StatusFromString parses the wire representation of a tracking status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"trackingStatus", fmt.Errorf("%q is not a valid tracking status", s))
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingStatus", fmt.Errorf("%d is not a valid tracking status", s))
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

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and returns the next status.
// Returns a typed error naming both states when the transition is illegal.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"trackingStatus",
			fmt.Errorf("cannot transition from %s to %s", s, next),
		)
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getStatusTransitions()[s]) == 0
}

// IsAttemptOutcome reports whether s concludes a delivery attempt
// (Delivered or Failed). Entering an outcome status is the moment the
// courier's zone slot frees up; Returned happens after the slot was
// already released.
func (s Status) IsAttemptOutcome() bool {
	return s == StatusDelivered || s == StatusFailed
}
