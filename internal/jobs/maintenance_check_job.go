package jobs

import (
	"context"
	"log/slog"
	"time"

	"gasfleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// maintenanceSchedule runs the morning fleet check at 06:00, before trucks
// leave for their routes.
const maintenanceSchedule = "0 0 6 * * *"

// MaintenanceCheckJob scans the day's schedule every morning and warns
// about trucks that are due for maintenance or lack the fuel for their
// planned route.
type MaintenanceCheckJob struct {
	handler queries.GetDailyScheduleQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMaintenanceCheckJob creates the morning fleet check job.
func NewMaintenanceCheckJob(handler queries.GetDailyScheduleQueryHandler, logger *slog.Logger) *MaintenanceCheckJob {
	return &MaintenanceCheckJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "maintenance_check_job"),
	}
}

// Start begins the maintenance check job on its morning schedule.
func (j *MaintenanceCheckJob) Start() error {
	_, err := j.cron.AddFunc(maintenanceSchedule, func() {
		ctx := context.Background()
		today := time.Now().UTC()

		query, queryErr := queries.NewGetDailyScheduleQuery(today)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Maintenance check job could not build query", "error", queryErr)
			return
		}

		schedules, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Maintenance check job failed", "error", handleErr)
			return
		}

		for _, schedule := range schedules {
			if schedule.MaintenanceDue {
				j.logger.WarnContext(ctx, "Truck is due for maintenance",
					"plate", schedule.Truck.Plate(),
					"orders", schedule.Capacity.OrdersCount,
				)
			}
			if !schedule.FuelSufficient {
				j.logger.WarnContext(ctx, "Truck fuel is insufficient for planned route",
					"plate", schedule.Truck.Plate(),
					"orders", schedule.Capacity.OrdersCount,
				)
			}
			if schedule.Capacity.IsOverallocated {
				j.logger.WarnContext(ctx, "Truck is overallocated",
					"plate", schedule.Truck.Plate(),
					"allocated_kg", schedule.Capacity.AllocatedKg,
					"capacity_kg", schedule.Capacity.CapacityKg,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance check job started (running daily at 06:00)")
	return nil
}

// Stop stops the maintenance check job.
func (j *MaintenanceCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance check job stopped")
}
