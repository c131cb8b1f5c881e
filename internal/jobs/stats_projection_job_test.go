package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsProjector struct{ mock.Mock }

func (m *MockStatsProjector) Handle(ctx context.Context, cmd commands.ProjectOrderStatsCommand) (commands.ProjectionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ProjectionResult), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsProjectionJob_RunsOnSchedule(t *testing.T) {
	projector := new(MockStatsProjector)
	calls := make(chan int, 10)
	projector.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ProjectOrderStatsCommand) bool {
		return cmd.BatchSize() == 25
	})).Run(func(mock.Arguments) {
		calls <- 1
	}).Return(commands.ProjectionResult{Processed: 1}, nil)

	job := jobs.NewStatsProjectionJob(projector, "* * * * * *", 25, discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("projection did not run")
	}
}

func TestStatsProjectionJob_FailedRunKeepsScheduling(t *testing.T) {
	projector := new(MockStatsProjector)
	calls := make(chan int, 10)
	projector.On("Handle", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		calls <- 1
	}).Return(commands.ProjectionResult{}, errors.New("database down"))

	job := jobs.NewStatsProjectionJob(projector, "* * * * * *", 10, discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(3 * time.Second):
			t.Fatalf("run %d did not happen", i+1)
		}
	}
}

func TestStatsProjectionJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewStatsProjectionJob(new(MockStatsProjector), "every minute", 10, discardLogger())

	assert.Error(t, job.Start())
}

func TestStatsProjectionJob_InvalidBatchSize(t *testing.T) {
	job := jobs.NewStatsProjectionJob(new(MockStatsProjector), "", 0, discardLogger())

	assert.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	projector := new(MockStatsProjector)
	projector.On("Handle", mock.Anything, mock.Anything).Return(commands.ProjectionResult{}, nil).Maybe()

	manager := jobs.NewJobManager(projector, jobs.DefaultStatsProjectionSchedule, commands.DefaultProjectionBatchSize, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailure(t *testing.T) {
	manager := jobs.NewJobManager(new(MockStatsProjector), "not a schedule", 10, discardLogger())

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats projection job")
}
