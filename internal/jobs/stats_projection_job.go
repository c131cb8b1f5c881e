package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStatsProjectionSchedule runs the projection every ten seconds.
const DefaultStatsProjectionSchedule = "*/10 * * * * *"

// StatsProjector drains one batch of OrderCreated events into the statistics store.
type StatsProjector interface {
	Handle(ctx context.Context, cmd commands.ProjectOrderStatsCommand) (commands.ProjectionResult, error)
}

// StatsProjectionJob periodically applies outbox events to the menu rollups.
// A run is skipped while the previous one is still going.
type StatsProjectionJob struct {
	handler   StatsProjector
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStatsProjectionJob creates the job. schedule is a six-field cron
// expression (seconds first); an empty schedule uses DefaultStatsProjectionSchedule.
func NewStatsProjectionJob(handler StatsProjector, schedule string, batchSize int, logger *slog.Logger) *StatsProjectionJob {
	if schedule == "" {
		schedule = DefaultStatsProjectionSchedule
	}
	return &StatsProjectionJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "stats_projection_job"),
	}
}

// Start registers the projection and starts the scheduler.
func (j *StatsProjectionJob) Start() error {
	cmd, err := commands.NewProjectOrderStatsCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stats projection job failed", "error", handleErr)
			return
		}
		if result != (commands.ProjectionResult{}) {
			j.logger.InfoContext(ctx, "Stats projection run",
				"processed", result.Processed, "failed", result.Failed, "abandoned", result.Abandoned)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats projection job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running projection to finish.
func (j *StatsProjectionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats projection job stopped")
}
