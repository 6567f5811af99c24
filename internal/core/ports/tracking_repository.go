package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for delivery tracking
// aggregates. At most one tracking record exists per order; the storage layer
// enforces this with a unique index on the order identifier.
type TrackingRepository interface {
	// Add persists a new tracking aggregate to storage. Fails when a record
	// for the same order already exists.
	Add(ctx context.Context, aggregate *tracking.Tracking) error

	// Update persists changes to an existing tracking aggregate, including
	// milestone timestamps and outcome details.
	Update(ctx context.Context, aggregate *tracking.Tracking) error

	// Get retrieves a tracking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error)

	// GetByOrderID retrieves the tracking record for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error)

	// ExistsForOrder reports whether a tracking record exists for the given
	// order. Assignment checks it inside the transaction so a concurrent
	// duplicate assignment is rejected before any write happens.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
