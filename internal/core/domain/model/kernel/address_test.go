package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all components", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 MG Road", "Pune", "Maharashtra", "411001", "Near station", "+91-9000000000")

		require.NoError(t, err)
		assert.Equal(t, "12 MG Road", addr.Street())
		assert.Equal(t, "Pune", addr.City())
		assert.Equal(t, "Maharashtra", addr.State())
		assert.Equal(t, "411001", addr.Pincode())
		assert.Equal(t, "Near station", addr.Landmark())
		assert.Equal(t, "+91-9000000000", addr.Phone())
		assert.NoError(t, addr.Validate())
	})

	t.Run("should create address with only mandatory components", func(t *testing.T) {
		addr, err := kernel.NewAddress("", "Pune", "", "411001", "", "")

		require.NoError(t, err)
		assert.Empty(t, addr.Street())
		assert.Equal(t, "Pune", addr.City())
		assert.Equal(t, "411001", addr.Pincode())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		addr, err := kernel.NewAddress("  12 MG Road ", " Pune ", "", " 411001 ", "", "")

		require.NoError(t, err)
		assert.Equal(t, "12 MG Road", addr.Street())
		assert.Equal(t, "Pune", addr.City())
		assert.Equal(t, "411001", addr.Pincode())
	})

	t.Run("should reject empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("12 MG Road", "", "", "411001", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank pincode", func(t *testing.T) {
		_, err := kernel.NewAddress("12 MG Road", "Pune", "", "   ", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddress_CityEquals(t *testing.T) {
	addr, err := kernel.NewAddress("", "Pune", "", "411001", "", "")
	require.NoError(t, err)

	t.Run("should match city case-insensitively", func(t *testing.T) {
		assert.True(t, addr.CityEquals("pune"))
		assert.True(t, addr.CityEquals("PUNE"))
		assert.True(t, addr.CityEquals(" Pune "))
	})

	t.Run("should not match different city", func(t *testing.T) {
		assert.False(t, addr.CityEquals("Mumbai"))
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("should equal identical addresses", func(t *testing.T) {
		a, err := kernel.NewAddress("12 MG Road", "Pune", "MH", "411001", "", "")
		require.NoError(t, err)
		b, err := kernel.NewAddress("12 MG Road", "Pune", "MH", "411001", "", "")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should not equal addresses with different pincode", func(t *testing.T) {
		a, err := kernel.NewAddress("12 MG Road", "Pune", "MH", "411001", "", "")
		require.NoError(t, err)
		b, err := kernel.NewAddress("12 MG Road", "Pune", "MH", "411002", "", "")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should reject zero value address", func(t *testing.T) {
		var addr kernel.Address

		require.Error(t, addr.Validate())
	})
}
