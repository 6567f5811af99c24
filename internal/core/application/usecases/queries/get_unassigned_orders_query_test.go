package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnassignedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUnassignedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnassignedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnassignedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnassignedOrdersQueryIsNotConstructed)
}
