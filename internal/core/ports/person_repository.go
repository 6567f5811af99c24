package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
)

// DeliveryPersonRepository defines the persistence contract for delivery
// person aggregates.
type DeliveryPersonRepository interface {
	// Add persists a new delivery person aggregate to storage.
	// The aggregate must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *person.DeliveryPerson) error

	// Update persists changes to an existing delivery person aggregate,
	// including status, sanctions, and performance counters.
	Update(ctx context.Context, aggregate *person.DeliveryPerson) error

	// Get retrieves a delivery person aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*person.DeliveryPerson, error)

	// GetByUserID retrieves the delivery person linked to the given user
	// account. Used to resolve the acting courier on status updates.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*person.DeliveryPerson, error)

	// GetByIDs retrieves the delivery persons with the given identifiers.
	// Missing identifiers are skipped, not reported as errors; the selector
	// treats an absent person as an ineligible candidate.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*person.DeliveryPerson, error)
}
