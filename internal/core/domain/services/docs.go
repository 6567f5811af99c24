// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the delivery system.
//
// The package includes:
//   - AssignmentSelector: picks the delivery person for an order within a zone
//   - ProjectOrderStatus: maps tracking progress onto the order status
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
