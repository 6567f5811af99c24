package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryPersonStatsQueryIsNotConstructed = errors.New(
		"GetDeliveryPersonStatsQuery must be created via NewGetDeliveryPersonStatsQuery constructor",
	)
)

// GetDeliveryPersonStatsQuery retrieves delivery counts and the success rate
// for one delivery person. This backs the courier's personal stats screen.
//
// Example:
//
//	query, err := NewGetDeliveryPersonStatsQuery(personID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetDeliveryPersonStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve stats: %w", err)
//	}
//	fmt.Printf("%s: %d deliveries, %.0f%% success\n",
//	    stats.Name, stats.TotalDeliveries, stats.SuccessRate*100)
type GetDeliveryPersonStatsQuery struct {
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonStatsQuery creates a stats query for one delivery person.
// The person ID must be a valid UUID.
func NewGetDeliveryPersonStatsQuery(deliveryPersonID kernel.UUID) (GetDeliveryPersonStatsQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetDeliveryPersonStatsQuery{}, err
	}

	return GetDeliveryPersonStatsQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryPersonStatsQueryIsNotConstructed if validation fails.
func (q GetDeliveryPersonStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonStatsQueryIsNotConstructed)
}

// DeliveryPersonID returns the person whose stats are requested.
func (q GetDeliveryPersonStatsQuery) DeliveryPersonID() kernel.UUID {
	return q.deliveryPersonID
}

// GetDeliveryPersonStatsQueryResponse aggregates one courier's delivery
// history. Pending counts deliveries still in flight; SuccessRate is
// delivered over total concluded attempts.
type GetDeliveryPersonStatsQueryResponse struct {
	DeliveryPersonID kernel.UUID
	Name             string
	Rating           float64

	TotalDeliveries     int
	DeliveredDeliveries int
	PendingDeliveries   int
	FailedDeliveries    int
	SuccessRate         float64
}
