package jobs

import (
	"context"
	"log/slog"
	"time"

	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// planningSchedule runs the nightly planning pass at 20:00 so tomorrow's
// allocations are committed before the evening loading shift.
const planningSchedule = "0 0 20 * * *"

// AllocationPlanningJob runs the nightly allocation planning pass.
// Plans the next day's pending orders onto the fleet.
type AllocationPlanningJob struct {
	handler commands.PlanAllocationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationPlanningJob creates the nightly planning job.
// Uses PlanAllocationsCommandHandler to commit the optimizer's proposals.
func NewAllocationPlanningJob(handler commands.PlanAllocationsCommandHandler, logger *slog.Logger) *AllocationPlanningJob {
	return &AllocationPlanningJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "allocation_planning_job"),
	}
}

// Start begins the allocation planning job on its nightly schedule.
func (j *AllocationPlanningJob) Start() error {
	_, err := j.cron.AddFunc(planningSchedule, func() {
		ctx := context.Background()
		targetDate := time.Now().UTC().AddDate(0, 0, 1)

		cmd, cmdErr := commands.NewPlanAllocationsCommand(targetDate)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Allocation planning job could not build command", "error", cmdErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Allocation planning job failed", "error", handleErr)
			return
		}

		metrics.RecordPlanningRun(
			result.Summary.AllocatedOrders,
			len(result.Unallocated),
			result.Summary.FleetUtilizationPct,
		)

		j.logger.InfoContext(ctx, "Allocation planning run completed",
			"date", cmd.Date().Format("2006-01-02"),
			"total_orders", result.Summary.TotalOrders,
			"allocated", result.Summary.AllocatedOrders,
			"unallocated", len(result.Unallocated),
			"fleet_utilization_pct", result.Summary.FleetUtilizationPct,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation planning job started (running nightly at 20:00)")
	return nil
}

// Stop stops the allocation planning job.
func (j *AllocationPlanningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation planning job stopped")
}
