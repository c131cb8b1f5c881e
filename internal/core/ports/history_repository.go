package ports

import (
	"context"

	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryRepository is the append-only status trail of orders.
// Entries are never updated nor deleted.
type HistoryRepository interface {
	// Append stores one transition and returns the entry id.
	Append(ctx context.Context, orderID uuid.UUID, t order.Transition) (int64, error)

	// List returns the entries of an order, oldest first. Entries sharing a
	// timestamp keep their insertion order.
	List(ctx context.Context, orderID uuid.UUID) ([]order.HistoryEntry, error)
}
