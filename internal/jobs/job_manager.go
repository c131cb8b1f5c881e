package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsProjectionJob *StatsProjectionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsProjector StatsProjector,
	statsSchedule string,
	statsBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsProjectionJob: NewStatsProjectionJob(statsProjector, statsSchedule, statsBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsProjectionJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats projection job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsProjectionJob.Stop()
}
