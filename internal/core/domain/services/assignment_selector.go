package services

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/zone"
)

// ErrNoCandidateAvailable is returned when no delivery person in the zone can
// take the order. This occurs when the zone has no assignments, every
// assignment is inactive or at capacity, or every eligible person is
// unavailable (inactive, banned, or suspended).
var ErrNoCandidateAvailable = errors.New("no delivery person available in zone")

// AssignmentSelector is the domain service that picks which delivery person
// receives an order within a matched zone. It is pure and deterministic: given
// the same zone state and person set it always returns the same candidate.
//
// Selection rules:
//   - only active assignments with spare capacity are considered
//   - the referenced person must be available (active, not banned or suspended)
//   - candidates rank by ascending current load
//   - ties break by descending success rate
//   - remaining ties keep the zone's assignment order (first wins)
//
// A person with no recorded deliveries ranks with success rate zero, so under
// equal load an experienced courier with any successes is preferred over a
// newcomer.
type AssignmentSelector struct{}

// NewAssignmentSelector creates a new AssignmentSelector instance.
func NewAssignmentSelector() AssignmentSelector {
	return AssignmentSelector{}
}

// Select picks the best candidate assignment from the zone.
//
// Parameters:
//   - z: the zone matched against the order's shipping address
//   - persons: the delivery persons referenced by the zone's assignments;
//     assignments whose person is absent from the slice are skipped
//
// Returns:
//   - *zone.Assignment: the winning assignment
//   - *person.DeliveryPerson: the person behind it
//   - error: ErrNoCandidateAvailable when nothing survives filtering
func (s AssignmentSelector) Select(
	z *zone.Zone,
	persons []*person.DeliveryPerson,
) (*zone.Assignment, *person.DeliveryPerson, error) {
	if err := z.Validate(); err != nil {
		return nil, nil, err
	}

	personsByID := make(map[kernel.UUID]*person.DeliveryPerson, len(persons))
	for _, p := range persons {
		if err := p.Validate(); err != nil {
			return nil, nil, err
		}
		personsByID[p.ID()] = p
	}

	var (
		bestAssignment *zone.Assignment
		bestPerson     *person.DeliveryPerson
	)

	for _, a := range z.AvailableAssignments() {
		p, ok := personsByID[a.DeliveryPersonID()]
		if !ok || !p.IsAvailable() {
			continue
		}

		if bestAssignment == nil || s.ranksHigher(a, p, bestAssignment, bestPerson) {
			bestAssignment = a
			bestPerson = p
		}
	}

	if bestAssignment == nil {
		return nil, nil, ErrNoCandidateAvailable
	}

	return bestAssignment, bestPerson, nil
}

// ranksHigher reports whether candidate strictly outranks the current best.
// Equal load and equal success rate keeps the earlier assignment, preserving
// the zone's assignment order.
func (s AssignmentSelector) ranksHigher(
	candidate *zone.Assignment, candidatePerson *person.DeliveryPerson,
	best *zone.Assignment, bestPerson *person.DeliveryPerson,
) bool {
	if candidate.CurrentLoad() != best.CurrentLoad() {
		return candidate.CurrentLoad() < best.CurrentLoad()
	}
	return candidatePerson.SuccessRate() > bestPerson.SuccessRate()
}
