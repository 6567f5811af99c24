// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// PersonRepoFactory provides access to the delivery person repository within a transaction.
	PersonRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ZoneUoW manages transactions for zone-only operations.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// PersonUoW manages transactions for delivery-person-only operations.
	PersonUoW interface {
		TxManager
		PersonRepoFactory
	}

	// PersonUoWFactory creates new delivery person unit of work instances.
	PersonUoWFactory interface {
		Create() PersonUoW
	}

	// ZonePersonUoW manages transactions touching zones and delivery persons.
	// Used by zone assignment administration, which verifies the person before
	// mutating the zone.
	ZonePersonUoW interface {
		TxManager
		ZoneRepoFactory
		PersonRepoFactory
	}

	// ZonePersonUoWFactory creates new zone/person unit of work instances.
	ZonePersonUoWFactory interface {
		Create() ZonePersonUoW
	}

	// UoW manages transactions across all delivery aggregates.
	// The assignment coordinator and status updates use it so the zone load,
	// person counters, order, and tracking record move in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   zoneRepo := uow.ZoneRepository()
	//   trackingRepo := uow.TrackingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		PersonRepoFactory
		OrderRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
