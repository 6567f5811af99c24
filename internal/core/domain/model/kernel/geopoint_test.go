package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point within bounds", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(73.8567, 18.5204)

		require.NoError(t, err)
		assert.InDelta(t, 73.8567, p.Longitude(), 0.0001)
		assert.InDelta(t, 18.5204, p.Latitude(), 0.0001)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		for _, tc := range [][2]float64{
			{-180, 0},
			{180, 0},
			{0, -90},
			{0, 90},
		} {
			_, err := kernel.NewGeoPoint(tc[0], tc[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(180.5, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -90.1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should compare coordinates", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(73.85, 18.52)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(73.85, 18.52)
		require.NoError(t, err)
		c, err := kernel.NewGeoPoint(72.87, 19.07)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
