package commands_test

import (
	"errors"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/stats"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessage(id int64, attempts int, revenue decimal.Decimal) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:       id,
		Attempts: attempts,
		Event: order.CreatedEvent{
			OrderID:     uuid.New(),
			MenuID:      uuid.New(),
			MenuTitle:   "Buffet",
			ServiceDate: time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
			Revenue:     revenue,
			OccurredAt:  time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
		},
	}
}

func newProjectionMocks() (*MockOutboxRepository, *MockStatsStore, *MockUoW, *MockOutboxUoWFactory) {
	outbox := new(MockOutboxRepository)
	store := new(MockStatsStore)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	return outbox, store, uow, factory
}

func TestNewProjectOrderStatsCommand(t *testing.T) {
	cmd, err := commands.NewProjectOrderStatsCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())

	_, err = commands.NewProjectOrderStatsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestProjectOrderStatsCommandHandler_Handle_ProjectsBatch(t *testing.T) {
	ctx := t.Context()
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	cmd, err := commands.NewProjectOrderStatsCommand(10)
	require.NoError(t, err)

	outbox, store, uow, factory := newProjectionMocks()
	first := outboxMessage(1, 0, decimal.NewFromInt(162))
	second := outboxMessage(2, 2, decimal.NewFromInt(85))

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		outbox.On("FetchPending", ctx, 10).Return([]ports.OutboxMessage{first, second}, nil).Once(),
		store.On("Increment", ctx, mock.MatchedBy(func(inc stats.Increment) bool {
			return inc.MenuID == first.Event.MenuID &&
				inc.DayStart.Equal(time.Date(2026, 6, 12, 0, 0, 0, 0, paris)) &&
				inc.Revenue.Equal(decimal.NewFromInt(162))
		})).Return(nil).Once(),
		outbox.On("MarkProcessed", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		store.On("Increment", ctx, mock.MatchedBy(func(inc stats.Increment) bool {
			return inc.MenuID == second.Event.MenuID
		})).Return(nil).Once(),
		outbox.On("MarkProcessed", ctx, int64(2), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewProjectOrderStatsCommandHandler(factory, store, paris, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.ProjectionResult{Processed: 2}, result)
	outbox.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProjectOrderStatsCommandHandler_Handle_StoreFailureIsRetriedThenAbandoned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProjectOrderStatsCommand(10)
	require.NoError(t, err)

	outbox, store, uow, factory := newProjectionMocks()
	fresh := outboxMessage(1, 0, decimal.NewFromInt(10))
	lastChance := outboxMessage(2, commands.MaxProjectionAttempts-1, decimal.NewFromInt(10))
	storeErr := errors.New("mongo unavailable")

	uow.On("Begin", ctx).Return(nil).Once()
	outbox.On("FetchPending", ctx, 10).Return([]ports.OutboxMessage{fresh, lastChance}, nil).Once()
	store.On("Increment", ctx, mock.Anything).Return(storeErr).Twice()
	outbox.On("MarkFailed", ctx, int64(1), storeErr, false).Return(nil).Once()
	outbox.On("MarkFailed", ctx, int64(2), storeErr, true).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewProjectOrderStatsCommandHandler(factory, store, time.UTC, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.ProjectionResult{Failed: 1, Abandoned: 1}, result)
	outbox.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
	outbox.AssertExpectations(t)
}

func TestProjectOrderStatsCommandHandler_Handle_InvalidEventIsAbandoned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProjectOrderStatsCommand(10)
	require.NoError(t, err)

	outbox, store, uow, factory := newProjectionMocks()
	broken := outboxMessage(7, 0, decimal.NewFromInt(-3))

	uow.On("Begin", ctx).Return(nil).Once()
	outbox.On("FetchPending", ctx, 10).Return([]ports.OutboxMessage{broken}, nil).Once()
	outbox.On("MarkFailed", ctx, int64(7), mock.Anything, true).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewProjectOrderStatsCommandHandler(factory, store, time.UTC, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Abandoned)
	store.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}

func TestProjectOrderStatsCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProjectOrderStatsCommand(10)
	require.NoError(t, err)

	outbox, store, uow, factory := newProjectionMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	outbox.On("FetchPending", ctx, 10).Return(nil, errors.New("fetch error")).Once()

	h := commands.NewProjectOrderStatsCommandHandler(factory, store, time.UTC, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "fetch error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
