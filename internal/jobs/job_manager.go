package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	antiForgeryPurgeJob *AntiForgeryPurgeJob
	legacyOrderPurgeJob *LegacyOrderPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	tokenPurger TokenPurger,
	legacyPurger LegacyOrderPurger,
	legacyPurgeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		antiForgeryPurgeJob: NewAntiForgeryPurgeJob(tokenPurger, logger),
		legacyOrderPurgeJob: NewLegacyOrderPurgeJob(legacyPurger, legacyPurgeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.antiForgeryPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start anti-forgery purge job: %w", err)
	}

	if err := jm.legacyOrderPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.antiForgeryPurgeJob.Stop()
		return fmt.Errorf("failed to start legacy order purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.legacyOrderPurgeJob.Stop()
	jm.antiForgeryPurgeJob.Stop()
}
