package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the customer-facing lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> OutForDelivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Once a delivery tracking record exists, the order status is a projection of
// the tracking status (see services.ProjectOrderStatus); only Pending-stage
// operations (assignment, cancellation) drive it directly.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout, before assignment.
	StatusPending

	// StatusConfirmed means a delivery person was assigned.
	StatusConfirmed

	// StatusShipped means the parcel left the warehouse with the courier.
	StatusShipped

	// StatusOutForDelivery means the courier is on the final leg.
	StatusOutForDelivery

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state for orders cancelled before shipment.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusShipped:        "shipped",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusShipped:        "shipped",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// getStatusTransitions defines the legal successor set for each status.
// A status listing itself tolerates repeated projection of the same tracking
// stage and reassignment while confirmed. Terminal states have no successors.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusConfirmed, StatusShipped, StatusCancelled},
		StatusShipped:        {StatusShipped, StatusOutForDelivery},
		StatusOutForDelivery: {StatusOutForDelivery, StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses the wire representation of an order status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid order status", s))
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
			"orderStatus",
			fmt.Errorf("cannot transition from %s to %s", s, next),
		)
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getStatusTransitions()[s]) == 0
}
