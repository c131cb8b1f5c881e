package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transition is a status change recorded by the aggregate and not yet
// persisted to the history trail. From is nil for the creation transition.
type Transition struct {
	From    *Status
	To      Status
	ActorID uuid.UUID
	At      time.Time
}

// HistoryEntry is a persisted Transition.
type HistoryEntry struct {
	ID      int64
	OrderID uuid.UUID
	Transition
}

// CreatedEvent is emitted once per order and feeds the menu statistics rollup.
type CreatedEvent struct {
	OrderID     uuid.UUID
	MenuID      uuid.UUID
	MenuTitle   string
	ServiceDate time.Time
	Revenue     decimal.Decimal
	OccurredAt  time.Time
}
