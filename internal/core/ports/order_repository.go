package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its line-item
	// snapshot.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassigned retrieves Pending orders without an assigned delivery
	// person, oldest first. Feeds the assignment retry job.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)
}
