// Package jobs provides scheduled background tasks for the order desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order intake flow.
//
// # Available Jobs
//
// 1. PendingOrdersDigestJob - Periodically reminds staff about orders waiting
// in the new and in-review queues so nothing sits unanswered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, adminIDs, notifier, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The digest schedule comes from configuration as a six-field cron expression
// (seconds included), for example "0 0 9 * * *" for a daily 9:00 digest.
//
// # Error Handling
//
// - Digest failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
