package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/stats"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

const statsAction = "read menu statistics"

// ListMenuStatsQueryHandler serves reporting from the document store. Rollups
// are eventually consistent with the orders table.
type ListMenuStatsQueryHandler struct {
	store    ports.StatsStore
	location *time.Location
}

// NewListMenuStatsQueryHandler creates the handler. location is the business
// time zone the rollup days were computed in; returned days are expressed in it.
func NewListMenuStatsQueryHandler(store ports.StatsStore, location *time.Location) ListMenuStatsQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return ListMenuStatsQueryHandler{store: store, location: location}
}

// Handle is restricted to staff.
func (h ListMenuStatsQueryHandler) Handle(ctx context.Context, query ListMenuStatsQuery) ([]stats.Rollup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	if !p.IsStaff() {
		return nil, errs.NewAccessIsDeniedError(statsAction, p.Role.String())
	}

	start, _ := stats.DayBounds(query.From(), h.location)
	_, end := stats.DayBounds(query.To(), h.location)

	rollups, err := h.store.List(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if rollups == nil {
		rollups = make([]stats.Rollup, 0)
	}
	for i := range rollups {
		rollups[i].Day = rollups[i].Day.In(h.location)
	}
	return rollups, nil
}
