// Package jobs provides scheduled background tasks for the catering service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. StatsProjectionJob - Drains OrderCreated events from the outbox into the
// per-menu daily rollups of the document store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(projectHandler, "*/10 * * * * *", 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the events stay in the outbox for the next run.
// Events that keep failing are abandoned by the projection handler itself.
package jobs
