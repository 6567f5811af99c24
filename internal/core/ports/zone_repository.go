// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
// Provides methods for storing, retrieving, and matching zones against
// shipping addresses, including a locking read for assignment workflows.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists changes to an existing zone aggregate, including its
	// assignments and their load counters.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a zone aggregate by its unique identifier.
	// Returns the complete zone with all assignments.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetForUpdate retrieves a zone like Get but takes a row-level lock on
	// the zone for the duration of the surrounding transaction. Assignment
	// workflows use it so concurrent capacity checks and load changes on the
	// same zone serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every zone with its assignments.
	GetAll(ctx context.Context) ([]*zone.Zone, error)

	// FindActiveByCityPincode retrieves the active zones serving the given
	// city and pincode, in creation order. The caller matches the order's
	// shipping address against the result.
	FindActiveByCityPincode(ctx context.Context, city, pincode string) ([]*zone.Zone, error)
}
