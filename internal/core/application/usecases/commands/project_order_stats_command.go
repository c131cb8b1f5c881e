package commands

import (
	"errors"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrProjectOrderStatsCommandIsNotConstructed = errors.New(
	"ProjectOrderStatsCommand must be created via NewProjectOrderStatsCommand constructor",
)

// DefaultProjectionBatchSize is the number of outbox events handled per run.
const DefaultProjectionBatchSize = 100

// ProjectOrderStatsCommand drains one batch of OrderCreated events into the
// menu statistics rollups.
type ProjectOrderStatsCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

func NewProjectOrderStatsCommand(batchSize int) (ProjectOrderStatsCommand, error) {
	if batchSize < 1 {
		return ProjectOrderStatsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, nil)
	}
	return ProjectOrderStatsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ProjectOrderStatsCommand) Validate() error {
	return c.guard.Validate(ErrProjectOrderStatsCommandIsNotConstructed)
}

func (c ProjectOrderStatsCommand) BatchSize() int {
	return c.batchSize
}
