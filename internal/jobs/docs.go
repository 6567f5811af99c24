// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. AssignmentRetryJob - Runs every 30 seconds to retry delivery assignment for pending orders without a delivery person
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(unassignedOrdersHandler, assignDeliveryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retry job uses the cron expression "*/30 * * * * *". Assignment is
// already attempted synchronously at checkout, so the sweep only needs to
// catch orders that could not be assigned then.
//
// # Error Handling
//
// - An order that still cannot be assigned is a business outcome, not an error; it stays pending for the next run
// - Infrastructure errors (query or transaction failures) are logged and the run moves on to the next order
package jobs
