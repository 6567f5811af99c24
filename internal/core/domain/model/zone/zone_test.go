package zone_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestZone(t *testing.T) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{"411001", "411002"}, []string{"Camp"})
	require.NoError(t, err)
	return z
}

func testAddress(t *testing.T, city, pincode string) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("12 MG Road", city, "Maharashtra", pincode, "", "")
	require.NoError(t, err)
	return addr
}

func TestNewZone(t *testing.T) {
	t.Run("creates_active_zone_without_assignments", func(t *testing.T) {
		// When
		z := newTestZone(t)

		// Then
		assert.True(t, z.IsActive())
		assert.Empty(t, z.Assignments())
		assert.Equal(t, []string{"411001", "411002"}, z.Pincodes())
		require.NoError(t, z.Validate())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		// When
		_, err := zone.NewZone(kernel.NewUUID(), " ", "Pune", []string{"411001"}, nil)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_pincode_set", func(t *testing.T) {
		// When
		_, err := zone.NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{" ", ""}, nil)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("collapses_duplicate_pincodes", func(t *testing.T) {
		// When
		z, err := zone.NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{"411001", "411001", " 411002 "}, nil)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"411001", "411002"}, z.Pincodes())
	})
}

func TestZone_Matches(t *testing.T) {
	z := newTestZone(t)

	t.Run("matches_city_case_insensitively", func(t *testing.T) {
		assert.True(t, z.Matches(testAddress(t, "pune", "411001")))
		assert.True(t, z.Matches(testAddress(t, "PUNE", "411002")))
	})

	t.Run("does_not_match_foreign_pincode", func(t *testing.T) {
		assert.False(t, z.Matches(testAddress(t, "Pune", "400001")))
	})

	t.Run("does_not_match_foreign_city", func(t *testing.T) {
		assert.False(t, z.Matches(testAddress(t, "Mumbai", "411001")))
	})

	t.Run("inactive_zone_never_matches", func(t *testing.T) {
		// Given
		inactive := newTestZone(t)
		inactive.SetActive(false)

		// Then
		assert.False(t, inactive.Matches(testAddress(t, "Pune", "411001")))
	})
}

func TestZone_AddAssignment(t *testing.T) {
	t.Run("adds_active_assignment_with_zero_load", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()

		// When
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 5))

		// Then
		a, err := z.AssignmentFor(personID)
		require.NoError(t, err)
		assert.True(t, a.IsActive())
		assert.Equal(t, 5, a.MaxCapacity())
		assert.Zero(t, a.CurrentLoad())
	})

	t.Run("rejects_duplicate_assignment", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 5))

		// When
		err := z.AddAssignment(personID, kernel.NewUUID(), 3)

		// Then
		require.ErrorIs(t, err, zone.ErrPersonAlreadyAssigned)
	})

	t.Run("rejects_capacity_below_one", func(t *testing.T) {
		// Given
		z := newTestZone(t)

		// When
		err := z.AddAssignment(kernel.NewUUID(), kernel.NewUUID(), 0)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestZone_RemoveAssignment(t *testing.T) {
	t.Run("removes_existing_assignment", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 5))

		// When
		require.NoError(t, z.RemoveAssignment(personID))

		// Then
		_, err := z.AssignmentFor(personID)
		require.ErrorIs(t, err, zone.ErrAssignmentNotFound)
	})

	t.Run("fails_for_unknown_person", func(t *testing.T) {
		// Given
		z := newTestZone(t)

		// Then
		require.ErrorIs(t, z.RemoveAssignment(kernel.NewUUID()), zone.ErrAssignmentNotFound)
	})
}

func TestZone_LoadAccounting(t *testing.T) {
	t.Run("increment_rejects_at_capacity", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 2))

		// When
		require.NoError(t, z.IncrementLoad(personID))
		require.NoError(t, z.IncrementLoad(personID))
		err := z.IncrementLoad(personID)

		// Then
		require.ErrorIs(t, err, zone.ErrAssignmentAtCapacity)
		a, findErr := z.AssignmentFor(personID)
		require.NoError(t, findErr)
		assert.Equal(t, 2, a.CurrentLoad())
	})

	t.Run("decrement_floors_at_zero", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 2))

		// When
		require.NoError(t, z.DecrementLoad(personID))

		// Then
		a, err := z.AssignmentFor(personID)
		require.NoError(t, err)
		assert.Zero(t, a.CurrentLoad())
	})

	t.Run("sums_capacity_and_load_across_assignments", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		p1, p2 := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, z.AddAssignment(p1, kernel.NewUUID(), 5))
		require.NoError(t, z.AddAssignment(p2, kernel.NewUUID(), 3))
		require.NoError(t, z.IncrementLoad(p1))
		require.NoError(t, z.IncrementLoad(p2))
		require.NoError(t, z.IncrementLoad(p2))

		// Then
		assert.Equal(t, 8, z.TotalCapacity())
		assert.Equal(t, 3, z.CurrentLoad())
	})
}

func TestZone_AvailableAssignments(t *testing.T) {
	t.Run("filters_inactive_and_full_assignments", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		active, full, disabled := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, z.AddAssignment(active, kernel.NewUUID(), 2))
		require.NoError(t, z.AddAssignment(full, kernel.NewUUID(), 1))
		require.NoError(t, z.AddAssignment(disabled, kernel.NewUUID(), 2))
		require.NoError(t, z.IncrementLoad(full))
		require.NoError(t, z.SetAssignmentActive(disabled, false))

		// When
		available := z.AvailableAssignments()

		// Then
		require.Len(t, available, 1)
		assert.True(t, available[0].DeliveryPersonID().IsEqual(active))
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		first, second := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, z.AddAssignment(first, kernel.NewUUID(), 2))
		require.NoError(t, z.AddAssignment(second, kernel.NewUUID(), 2))

		// When
		available := z.AvailableAssignments()

		// Then
		require.Len(t, available, 2)
		assert.True(t, available[0].DeliveryPersonID().IsEqual(first))
		assert.True(t, available[1].DeliveryPersonID().IsEqual(second))
	})
}

func TestAssignment_SetMaxCapacity(t *testing.T) {
	t.Run("rejects_capacity_below_current_load", func(t *testing.T) {
		// Given
		a, err := zone.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)
		require.NoError(t, a.IncrementLoad())
		require.NoError(t, a.IncrementLoad())

		// When
		err = a.SetMaxCapacity(1)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("resizes_when_load_fits", func(t *testing.T) {
		// Given
		a, err := zone.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)

		// When
		require.NoError(t, a.SetMaxCapacity(10))

		// Then
		assert.Equal(t, 10, a.MaxCapacity())
		assert.Equal(t, 10, a.AvailableSlots())
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("rejects_load_above_capacity", func(t *testing.T) {
		// When
		_, err := zone.RestoreAssignment(kernel.NewUUID(), kernel.NewUUID(), 2, 3, true)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("restores_load_and_flags", func(t *testing.T) {
		// When
		a, err := zone.RestoreAssignment(kernel.NewUUID(), kernel.NewUUID(), 5, 4, false)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 4, a.CurrentLoad())
		assert.False(t, a.IsActive())
		assert.True(t, a.HasCapacity())
	})
}

func TestZone_UpdateDetails(t *testing.T) {
	t.Run("keeps_assignments_intact", func(t *testing.T) {
		// Given
		z := newTestZone(t)
		personID := kernel.NewUUID()
		require.NoError(t, z.AddAssignment(personID, kernel.NewUUID(), 5))
		require.NoError(t, z.IncrementLoad(personID))

		// When
		require.NoError(t, z.UpdateDetails("Old Town", "Pune", []string{"411030"}, nil))

		// Then
		assert.Equal(t, "Old Town", z.Name())
		assert.Equal(t, []string{"411030"}, z.Pincodes())
		a, err := z.AssignmentFor(personID)
		require.NoError(t, err)
		assert.Equal(t, 1, a.CurrentLoad())
	})
}
