package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/stats"
)

// StatsStore keeps the per-menu, per-day rollups in the document store.
type StatsStore interface {
	// Increment adds one order and its revenue to the rollup of
	// (inc.MenuID, inc.DayStart), creating it with a count of 1 when absent.
	// Concurrent increments of the same pair never lose an update.
	Increment(ctx context.Context, inc stats.Increment) error

	// List returns the rollups whose day falls in [from, to), ordered by day
	// then menu title.
	List(ctx context.Context, from, to time.Time) ([]stats.Rollup, error)
}
