package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
)

// OutboxMessage is an OrderCreated event waiting to be projected into the
// statistics store.
type OutboxMessage struct {
	ID       int64
	Event    order.CreatedEvent
	Attempts int
}

// OutboxRepository stores order events in the same transaction as the order
// and hands them to the projection job afterwards.
type OutboxRepository interface {
	// Add enqueues the creation event of an order.
	Add(ctx context.Context, event order.CreatedEvent) error

	// FetchPending locks and returns up to limit unprocessed messages, oldest
	// first. Rows locked by a concurrent worker are skipped.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed flags a message as projected.
	MarkProcessed(ctx context.Context, id int64, at time.Time) error

	// MarkFailed records a failed attempt. An abandoned message is never
	// fetched again.
	MarkFailed(ctx context.Context, id int64, cause error, abandon bool) error
}
