// Package jobs provides scheduled background tasks for the fleet capacity service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations of the allocation planning cycle.
//
// # Available Jobs
//
// 1. AllocationPlanningJob - Runs nightly at 20:00 to plan the next day's pending orders onto the fleet
// 2. MaintenanceCheckJob - Runs daily at 06:00 to warn about maintenance-due, fuel-short, and overallocated trucks
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(planAllocationsHandler, getDailyScheduleHandler, logger)
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
// Both jobs use six-field cron expressions with a seconds column. The
// planning job runs before the evening loading shift so every truck has its
// allocations committed when loading starts; the maintenance check runs
// before trucks leave in the morning.
//
// # Error Handling
//
// - Planning failures are logged and retried on the next scheduled run
// - The maintenance check only logs; it never mutates fleet state
// - Failed job starts will stop any already running jobs
package jobs
