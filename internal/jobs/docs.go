// Package jobs provides scheduled background tasks for the admin panel.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AntiForgeryPurgeJob - Runs every minute to drop expired anti-forgery tokens
// 2. LegacyOrderPurgeJob - Runs on a configured schedule to delete orders with items lacking a product reference
//
// # Usage
//
//	jobManager := jobs.NewJobManager(tokenStore, purgeHandler, cfg.LegacyPurgeSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and the job keeps its schedule. A job that fails to start
// stops the jobs already running.
package jobs
