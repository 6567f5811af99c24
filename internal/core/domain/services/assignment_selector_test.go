package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZone(t *testing.T) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{"411001", "411002"}, nil)
	require.NoError(t, err)
	return z
}

func newPerson(t *testing.T, total, successful, failed int) *person.DeliveryPerson {
	t.Helper()

	p, err := person.RestoreDeliveryPerson(
		kernel.NewUUID(), kernel.NewUUID(), "Test Courier", "+91-9000000000",
		person.VehicleBike, "MH12AB1234", person.StatusActive,
		person.Sanctions{}, 4.5, total, successful, failed)
	require.NoError(t, err)
	return p
}

func addAssignment(t *testing.T, z *zone.Zone, p *person.DeliveryPerson, maxCapacity, load int) {
	t.Helper()

	require.NoError(t, z.AddAssignment(p.ID(), p.UserID(), maxCapacity))
	for range load {
		require.NoError(t, z.IncrementLoad(p.ID()))
	}
}

func TestAssignmentSelector_Select(t *testing.T) {
	selector := services.NewAssignmentSelector()

	t.Run("lower_load_beats_better_success_rate", func(t *testing.T) {
		// Given: P1 holds 2 of 5 with 90% success, P2 holds 1 of 3 with 50%
		z := newZone(t)
		p1 := newPerson(t, 100, 90, 10)
		p2 := newPerson(t, 10, 5, 5)
		addAssignment(t, z, p1, 5, 2)
		addAssignment(t, z, p2, 3, 1)

		// When
		winner, winnerPerson, err := selector.Select(z, []*person.DeliveryPerson{p1, p2})

		// Then: load ranks before success rate
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(p2.ID()))
		assert.True(t, winnerPerson.IsEqual(p2))
	})

	t.Run("equal_load_breaks_tie_on_success_rate", func(t *testing.T) {
		// Given
		z := newZone(t)
		p1 := newPerson(t, 10, 5, 5)
		p2 := newPerson(t, 10, 9, 1)
		addAssignment(t, z, p1, 5, 1)
		addAssignment(t, z, p2, 5, 1)

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{p1, p2})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(p2.ID()))
	})

	t.Run("full_tie_keeps_assignment_order", func(t *testing.T) {
		// Given: identical load and success rate
		z := newZone(t)
		p1 := newPerson(t, 10, 8, 2)
		p2 := newPerson(t, 20, 16, 4)
		addAssignment(t, z, p1, 5, 1)
		addAssignment(t, z, p2, 5, 1)

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{p1, p2})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(p1.ID()))
	})

	t.Run("newcomer_ranks_with_zero_success_rate", func(t *testing.T) {
		// Given: a newcomer and a veteran with one success, both idle
		z := newZone(t)
		newcomer := newPerson(t, 0, 0, 0)
		veteran := newPerson(t, 1, 1, 0)
		addAssignment(t, z, newcomer, 5, 0)
		addAssignment(t, z, veteran, 5, 0)

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{newcomer, veteran})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(veteran.ID()))
	})

	t.Run("skips_assignments_at_capacity", func(t *testing.T) {
		// Given
		z := newZone(t)
		full := newPerson(t, 10, 10, 0)
		free := newPerson(t, 10, 1, 9)
		addAssignment(t, z, full, 2, 2)
		addAssignment(t, z, free, 2, 1)

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{full, free})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(free.ID()))
	})

	t.Run("skips_inactive_assignments", func(t *testing.T) {
		// Given
		z := newZone(t)
		paused := newPerson(t, 10, 10, 0)
		active := newPerson(t, 10, 1, 9)
		addAssignment(t, z, paused, 5, 0)
		addAssignment(t, z, active, 5, 3)
		require.NoError(t, z.SetAssignmentActive(paused.ID(), false))

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{paused, active})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(active.ID()))
	})

	t.Run("skips_unavailable_persons", func(t *testing.T) {
		// Given: the better candidate is suspended
		z := newZone(t)
		suspended, err := person.RestoreDeliveryPerson(
			kernel.NewUUID(), kernel.NewUUID(), "Suspended Courier", "+91-9000000002",
			person.VehicleBike, "MH12CD5678", person.StatusSuspended,
			person.Sanctions{IsSuspended: true, SuspendReason: "repeated complaints"},
			3.0, 50, 45, 5)
		require.NoError(t, err)
		available := newPerson(t, 10, 5, 5)
		addAssignment(t, z, suspended, 5, 0)
		addAssignment(t, z, available, 5, 2)

		// When
		winner, _, selErr := selector.Select(z, []*person.DeliveryPerson{suspended, available})

		// Then
		require.NoError(t, selErr)
		assert.True(t, winner.DeliveryPersonID().IsEqual(available.ID()))
	})

	t.Run("skips_assignments_without_a_loaded_person", func(t *testing.T) {
		// Given: only one of two assigned persons was provided
		z := newZone(t)
		missing := newPerson(t, 10, 10, 0)
		loaded := newPerson(t, 10, 1, 9)
		addAssignment(t, z, missing, 5, 0)
		addAssignment(t, z, loaded, 5, 3)

		// When
		winner, _, err := selector.Select(z, []*person.DeliveryPerson{loaded})

		// Then
		require.NoError(t, err)
		assert.True(t, winner.DeliveryPersonID().IsEqual(loaded.ID()))
	})

	t.Run("returns_typed_error_when_no_candidate_survives", func(t *testing.T) {
		// Given: one assignment, person at capacity
		z := newZone(t)
		p := newPerson(t, 10, 8, 2)
		addAssignment(t, z, p, 1, 1)

		// When
		_, _, err := selector.Select(z, []*person.DeliveryPerson{p})

		// Then
		require.ErrorIs(t, err, services.ErrNoCandidateAvailable)
	})

	t.Run("returns_typed_error_for_empty_zone", func(t *testing.T) {
		// When
		_, _, err := selector.Select(newZone(t), nil)

		// Then
		require.ErrorIs(t, err, services.ErrNoCandidateAvailable)
	})
}
