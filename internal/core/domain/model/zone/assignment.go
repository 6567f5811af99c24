package zone

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentAtCapacity is returned when incrementing the load of a fully loaded assignment.
	ErrAssignmentAtCapacity = errors.New("assignment is at maximum capacity")
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is the link between a zone and a delivery person, carrying the
// per-zone capacity contract: how many concurrent deliveries the person takes
// in this zone (maxCapacity) and how many they currently hold (currentLoad).
//
// Invariants:
//   - maxCapacity ≥ 1
//   - 0 ≤ currentLoad ≤ maxCapacity
//
// Load moves only through IncrementLoad and DecrementLoad, both invoked by
// the delivery coordinator inside the zone's transaction, so the invariant
// holds under concurrent assignment requests.
type Assignment struct {
	deliveryPersonID kernel.UUID
	userID           kernel.UUID
	maxCapacity      int
	currentLoad      int
	isActive         bool
	guard            guard.ConstructorGuard
}

// NewAssignment creates an active assignment with zero load.
//
// Parameters:
//   - deliveryPersonID: the assigned person (must be a valid UUID)
//   - userID: the person's linked user account (must be a valid UUID)
//   - maxCapacity: concurrent delivery limit in this zone (must be ≥ 1)
func NewAssignment(deliveryPersonID, userID kernel.UUID, maxCapacity int) (*Assignment, error) {
	a := &Assignment{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setDeliveryPersonID(deliveryPersonID),
		a.setUserID(userID),
		a.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence with its
// recorded load and active flag.
func RestoreAssignment(
	deliveryPersonID, userID kernel.UUID,
	maxCapacity, currentLoad int,
	isActive bool,
) (*Assignment, error) {
	a := &Assignment{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setDeliveryPersonID(deliveryPersonID),
		a.setUserID(userID),
		a.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	if currentLoad < 0 || currentLoad > a.maxCapacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, a.maxCapacity)
	}
	a.currentLoad = currentLoad

	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// DeliveryPersonID returns the assigned person's identifier.
func (a *Assignment) DeliveryPersonID() kernel.UUID {
	return a.deliveryPersonID
}

// UserID returns the person's linked user account identifier.
func (a *Assignment) UserID() kernel.UUID {
	return a.userID
}

// MaxCapacity returns the concurrent delivery limit.
func (a *Assignment) MaxCapacity() int {
	return a.maxCapacity
}

// CurrentLoad returns the number of deliveries currently held.
func (a *Assignment) CurrentLoad() int {
	return a.currentLoad
}

// IsActive reports whether the assignment accepts new deliveries.
func (a *Assignment) IsActive() bool {
	return a.isActive
}

// AvailableSlots returns maxCapacity - currentLoad.
func (a *Assignment) AvailableSlots() int {
	return a.maxCapacity - a.currentLoad
}

// HasCapacity reports whether at least one more delivery fits.
func (a *Assignment) HasCapacity() bool {
	return a.currentLoad < a.maxCapacity
}

// IncrementLoad takes one capacity slot. Returns ErrAssignmentAtCapacity when
// the assignment is already full; the load never exceeds maxCapacity.
func (a *Assignment) IncrementLoad() error {
	if !a.HasCapacity() {
		return ErrAssignmentAtCapacity
	}
	a.currentLoad++
	return nil
}

// DecrementLoad releases one capacity slot, flooring at zero. Called when a
// delivery reaches a terminal state so the slot becomes available again.
func (a *Assignment) DecrementLoad() {
	if a.currentLoad > 0 {
		a.currentLoad--
	}
}

// SetMaxCapacity resizes the assignment. The new capacity must be ≥ 1 and
// must not undercut the current load, which would break the load invariant.
func (a *Assignment) SetMaxCapacity(maxCapacity int) error {
	if maxCapacity < 1 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}
	if maxCapacity < a.currentLoad {
		return errs.NewValueIsInvalidError("maxCapacity cannot be lower than current load")
	}
	a.maxCapacity = maxCapacity
	return nil
}

// SetActive toggles whether the assignment accepts new deliveries.
// Deactivation does not touch the current load; in-flight deliveries finish
// and release their slots normally.
func (a *Assignment) SetActive(active bool) {
	a.isActive = active
}

func (a *Assignment) setDeliveryPersonID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.deliveryPersonID = id
	return nil
}

func (a *Assignment) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.userID = id
	return nil
}

func (a *Assignment) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 1 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}
	a.maxCapacity = maxCapacity
	return nil
}
