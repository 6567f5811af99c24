package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetZoneStatisticsQuery_Valid(t *testing.T) {
	zoneID := kernel.NewUUID()

	query, err := queries.NewGetZoneStatisticsQuery(zoneID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ZoneID().IsEqual(zoneID))
}

func TestNewGetZoneStatisticsQuery_InvalidZoneID(t *testing.T) {
	_, err := queries.NewGetZoneStatisticsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetZoneStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetZoneStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetZoneStatisticsQueryIsNotConstructed)
}
