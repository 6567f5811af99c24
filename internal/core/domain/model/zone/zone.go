package zone

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for zone operations.
var (
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCityIsRequired is returned when attempting to create a zone without a city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrPincodesAreRequired is returned when the pincode set is empty.
	ErrPincodesAreRequired = errs.NewValueIsRequiredError("pincodes")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrPersonAlreadyAssigned is returned when assigning a person who already has an assignment in the zone.
	ErrPersonAlreadyAssigned = errors.New("delivery person is already assigned to this zone")
	// ErrAssignmentNotFound is returned when the zone has no assignment for the given person.
	ErrAssignmentNotFound = errors.New("assignment not found in zone")
)

// Zone is the aggregate root for a geographic delivery area: a city plus a
// set of pincodes, with the delivery persons assigned to serve it.
//
// The zone owns its assignments; capacity and load for a person within the
// zone can only change through the zone's methods, which keeps the
// currentLoad ≤ maxCapacity invariant inside one aggregate boundary. The
// delivery coordinator loads the zone row for update before mutating it, so
// two concurrent assignment requests cannot both take the last slot.
//
// Lifecycle: created and shaped by admin actions (pincodes, assignments,
// capacity); load counters mutated by the coordinator on every assignment
// and terminal tracking transition; deactivated rather than deleted once
// referenced by delivery history.
//
// Example:
//
//	z, err := NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{"411001"}, nil)
//	if err != nil {
//	    // handle validation error
//	}
//	if err := z.AddAssignment(personID, userID, 5); err != nil {
//	    // person already assigned or capacity invalid
//	}
type Zone struct {
	id          kernel.UUID
	name        string
	city        string
	pincodes    []string
	areas       []string
	assignments []*Assignment
	isActive    bool
	guard       guard.ConstructorGuard
}

// NewZone creates an active zone with no assignments.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable zone name (must be non-empty)
//   - city: the city this zone belongs to (must be non-empty)
//   - pincodes: postal codes covered (must contain at least one non-blank entry;
//     duplicates are collapsed)
//   - areas: optional informational area names
func NewZone(id kernel.UUID, name, city string, pincodes, areas []string) (*Zone, error) {
	z := &Zone{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCity(city),
		z.setPincodes(pincodes),
	); err != nil {
		return nil, err
	}

	z.areas = normalizeStrings(areas)
	return z, nil
}

// RestoreZone reconstructs a zone with its assignments and active flag from
// persistence.
func RestoreZone(
	id kernel.UUID,
	name, city string,
	pincodes, areas []string,
	assignments []*Assignment,
	isActive bool,
) (*Zone, error) {
	z := &Zone{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCity(city),
		z.setPincodes(pincodes),
	); err != nil {
		return nil, err
	}

	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	z.areas = normalizeStrings(areas)
	z.assignments = assignments
	return z, nil
}

// Validate ensures the zone was created through a constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares two zones by identifier.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone name.
func (z *Zone) Name() string {
	return z.name
}

// City returns the city the zone belongs to.
func (z *Zone) City() string {
	return z.city
}

// Pincodes returns a copy of the covered pincode set.
func (z *Zone) Pincodes() []string {
	out := make([]string, len(z.pincodes))
	copy(out, z.pincodes)
	return out
}

// Areas returns a copy of the informational area names.
func (z *Zone) Areas() []string {
	out := make([]string, len(z.areas))
	copy(out, z.areas)
	return out
}

// IsActive reports whether the zone participates in assignment.
func (z *Zone) IsActive() bool {
	return z.isActive
}

// Assignments returns a copy of the assignment list in insertion order.
// The assignments themselves are shared; mutate them only through the zone.
func (z *Zone) Assignments() []*Assignment {
	out := make([]*Assignment, len(z.assignments))
	copy(out, z.assignments)
	return out
}

// ContainsPincode reports whether the zone covers the given pincode.
func (z *Zone) ContainsPincode(pincode string) bool {
	pincode = strings.TrimSpace(pincode)
	for _, p := range z.pincodes {
		if p == pincode {
			return true
		}
	}
	return false
}

// Matches reports whether the zone serves the given shipping address: the
// zone is active, the city matches case-insensitively, and the pincode is in
// the covered set.
func (z *Zone) Matches(address kernel.Address) bool {
	return z.isActive && address.CityEquals(z.city) && z.ContainsPincode(address.Pincode())
}

// AddAssignment links a delivery person to the zone with the given capacity.
// A person can hold at most one assignment per zone.
func (z *Zone) AddAssignment(deliveryPersonID, userID kernel.UUID, maxCapacity int) error {
	if _, err := z.AssignmentFor(deliveryPersonID); err == nil {
		return ErrPersonAlreadyAssigned
	}

	assignment, err := NewAssignment(deliveryPersonID, userID, maxCapacity)
	if err != nil {
		return err
	}

	z.assignments = append(z.assignments, assignment)
	return nil
}

// RemoveAssignment unlinks a delivery person from the zone.
// Returns ErrAssignmentNotFound when the person has no assignment here.
func (z *Zone) RemoveAssignment(deliveryPersonID kernel.UUID) error {
	for i, a := range z.assignments {
		if a.DeliveryPersonID().IsEqual(deliveryPersonID) {
			z.assignments = append(z.assignments[:i], z.assignments[i+1:]...)
			return nil
		}
	}
	return ErrAssignmentNotFound
}

// AssignmentFor returns the assignment held by the given person.
// Returns ErrAssignmentNotFound when the person has no assignment here.
func (z *Zone) AssignmentFor(deliveryPersonID kernel.UUID) (*Assignment, error) {
	for _, a := range z.assignments {
		if a.DeliveryPersonID().IsEqual(deliveryPersonID) {
			return a, nil
		}
	}
	return nil, ErrAssignmentNotFound
}

// AvailableAssignments returns, in insertion order, the assignments that are
// active and still have free capacity. The slice is a copy; an empty result
// means the zone cannot take another delivery right now.
func (z *Zone) AvailableAssignments() []*Assignment {
	available := make([]*Assignment, 0, len(z.assignments))
	for _, a := range z.assignments {
		if a.IsActive() && a.HasCapacity() {
			available = append(available, a)
		}
	}
	return available
}

// IncrementLoad takes one capacity slot from the given person's assignment.
func (z *Zone) IncrementLoad(deliveryPersonID kernel.UUID) error {
	assignment, err := z.AssignmentFor(deliveryPersonID)
	if err != nil {
		return err
	}
	return assignment.IncrementLoad()
}

// DecrementLoad releases one capacity slot from the given person's
// assignment, flooring at zero.
func (z *Zone) DecrementLoad(deliveryPersonID kernel.UUID) error {
	assignment, err := z.AssignmentFor(deliveryPersonID)
	if err != nil {
		return err
	}
	assignment.DecrementLoad()
	return nil
}

// SetAssignmentCapacity resizes the given person's assignment.
func (z *Zone) SetAssignmentCapacity(deliveryPersonID kernel.UUID, maxCapacity int) error {
	assignment, err := z.AssignmentFor(deliveryPersonID)
	if err != nil {
		return err
	}
	return assignment.SetMaxCapacity(maxCapacity)
}

// SetAssignmentActive toggles the given person's assignment.
func (z *Zone) SetAssignmentActive(deliveryPersonID kernel.UUID, active bool) error {
	assignment, err := z.AssignmentFor(deliveryPersonID)
	if err != nil {
		return err
	}
	assignment.SetActive(active)
	return nil
}

// TotalCapacity sums maxCapacity across all assignments.
func (z *Zone) TotalCapacity() int {
	total := 0
	for _, a := range z.assignments {
		total += a.MaxCapacity()
	}
	return total
}

// CurrentLoad sums currentLoad across all assignments.
func (z *Zone) CurrentLoad() int {
	total := 0
	for _, a := range z.assignments {
		total += a.CurrentLoad()
	}
	return total
}

// UpdateDetails replaces the zone's descriptive attributes. Assignments and
// load state are untouched.
func (z *Zone) UpdateDetails(name, city string, pincodes, areas []string) error {
	if err := errors.Join(
		z.setName(name),
		z.setCity(city),
		z.setPincodes(pincodes),
	); err != nil {
		return err
	}
	z.areas = normalizeStrings(areas)
	return nil
}

// SetActive toggles whether the zone participates in assignment.
func (z *Zone) SetActive(active bool) {
	z.isActive = active
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}
	z.city = city
	return nil
}

func (z *Zone) setPincodes(pincodes []string) error {
	normalized := normalizeStrings(pincodes)
	if len(normalized) == 0 {
		return ErrPincodesAreRequired
	}
	z.pincodes = normalized
	return nil
}

// normalizeStrings trims entries, drops blanks, and collapses duplicates
// while preserving first-seen order.
func normalizeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
