package jobs

import (
	"fmt"
	"log/slog"

	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	allocationPlanningJob *AllocationPlanningJob
	maintenanceCheckJob   *MaintenanceCheckJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	planAllocationsHandler commands.PlanAllocationsCommandHandler,
	getDailyScheduleHandler queries.GetDailyScheduleQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		allocationPlanningJob: NewAllocationPlanningJob(planAllocationsHandler, logger),
		maintenanceCheckJob:   NewMaintenanceCheckJob(getDailyScheduleHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.allocationPlanningJob.Start(); err != nil {
		return fmt.Errorf("failed to start allocation planning job: %w", err)
	}

	if err := jm.maintenanceCheckJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.allocationPlanningJob.Stop()
		return fmt.Errorf("failed to start maintenance check job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.allocationPlanningJob.Stop()
	jm.maintenanceCheckJob.Stop()
}
