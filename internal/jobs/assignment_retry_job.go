package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AssignmentRetryJob periodically retries delivery assignment for pending
// orders that have no delivery person yet. Orders stay unassigned when no
// active zone covers their address or every courier in the zone is at
// capacity; this job picks them up once coverage or capacity appears.
type AssignmentRetryJob struct {
	unassignedOrders queries.GetUnassignedOrdersQueryHandler
	assignDelivery   commands.AssignDeliveryCommandHandler
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewAssignmentRetryJob creates a job that retries assignment for unassigned
// orders every 30 seconds.
func NewAssignmentRetryJob(
	unassignedOrders queries.GetUnassignedOrdersQueryHandler,
	assignDelivery commands.AssignDeliveryCommandHandler,
	logger *slog.Logger,
) *AssignmentRetryJob {
	return &AssignmentRetryJob{
		unassignedOrders: unassignedOrders,
		assignDelivery:   assignDelivery,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "assignment_retry_job"),
	}
}

// Start begins the assignment retry job.
func (j *AssignmentRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment retry job started (running every 30 seconds)")
	return nil
}

// Stop stops the assignment retry job.
func (j *AssignmentRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment retry job stopped")
}

func (j *AssignmentRetryJob) run() {
	ctx := context.Background()

	orders, err := j.unassignedOrders.Handle(ctx, queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unassigned orders", "error", err)
		return
	}

	for _, pending := range orders {
		cmd, cmdErr := commands.NewAssignDeliveryCommand(pending.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"order_id", pending.ID.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.assignDelivery.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Assignment retry failed",
				"order_id", pending.ID.String(), "error", handleErr)
			continue
		}

		if result.Assigned {
			j.logger.InfoContext(ctx, "Order assigned on retry",
				"order_id", pending.ID.String(),
				"delivery_person_id", result.DeliveryPersonID.String())
		}
		// Orders that still cannot be assigned stay pending for the next run
	}
}
