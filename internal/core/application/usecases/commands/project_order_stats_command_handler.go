package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/stats"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// MaxProjectionAttempts is how many times an event is tried before it is abandoned.
const MaxProjectionAttempts = 5

// ProjectionResult summarises one projection run.
type ProjectionResult struct {
	Processed int
	Failed    int
	Abandoned int
}

// ProjectOrderStatsCommandHandler applies pending OrderCreated events to the
// statistics store.
//
// Delivery is at least once: an event is marked processed only after its
// increment succeeded, and the batch stays locked until the run commits.
// Store failures are logged and recorded on the event, they never fail the
// run; the event is retried on the next run until MaxProjectionAttempts.
type ProjectOrderStatsCommandHandler struct {
	uowFactory OutboxUoWFactory
	store      ports.StatsStore
	location   *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewProjectOrderStatsCommandHandler creates the handler. location is the
// business time zone that defines calendar days.
func NewProjectOrderStatsCommandHandler(
	uowFactory OutboxUoWFactory,
	store ports.StatsStore,
	location *time.Location,
	logger *slog.Logger,
) ProjectOrderStatsCommandHandler {
	return ProjectOrderStatsCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		location:   location,
		logger:     logger.With("component", "stats_projection"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *ProjectOrderStatsCommandHandler) Handle(ctx context.Context, cmd ProjectOrderStatsCommand) (ProjectionResult, error) {
	var result ProjectionResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	for _, msg := range messages {
		applyErr := h.apply(ctx, msg)
		if applyErr == nil {
			if err = outbox.MarkProcessed(ctx, msg.ID, h.now()); err != nil {
				return result, err
			}
			result.Processed++
			continue
		}

		abandon := msg.Attempts+1 >= MaxProjectionAttempts || isPermanent(applyErr)
		if err = outbox.MarkFailed(ctx, msg.ID, applyErr, abandon); err != nil {
			return result, err
		}
		if abandon {
			result.Abandoned++
			h.logger.ErrorContext(ctx, "Stats projection abandoned event",
				"event_id", msg.ID, "order_id", msg.Event.OrderID, "attempts", msg.Attempts+1, "error", applyErr)
		} else {
			result.Failed++
			h.logger.WarnContext(ctx, "Stats projection failed, will retry",
				"event_id", msg.ID, "order_id", msg.Event.OrderID, "attempts", msg.Attempts+1, "error", applyErr)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (h *ProjectOrderStatsCommandHandler) apply(ctx context.Context, msg ports.OutboxMessage) error {
	ev := msg.Event
	inc, err := stats.NewIncrement(ev.MenuID, ev.MenuTitle, ev.ServiceDate, ev.Revenue, h.location)
	if err != nil {
		return err
	}
	return h.store.Increment(ctx, inc)
}

// isPermanent reports errors that no retry can fix.
func isPermanent(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
