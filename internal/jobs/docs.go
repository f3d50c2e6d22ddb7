// Package jobs provides scheduled background tasks for the production
// tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle management.
//
// # Available Jobs
//
// 1. ClosureScanJob - Runs every minute to close in-progress orders whose
// readiness rules are met
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeOrderHandler, orderRepo, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The scan treats not-ready, already-closed and lost-race outcomes as
// expected business results rather than errors; everything else is logged.
// The closure command re-assesses readiness inside its own transaction, so
// a scan working from a stale listing can never close an ineligible order.
package jobs
