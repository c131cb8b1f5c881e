// Package ports defines the contracts between the catering order use cases
// and the infrastructure that stores, reports and notifies about orders.
// Adapters under internal/adapters implement them; handlers only see these
// interfaces, which keeps them testable with mocks.
package ports

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ErrOrderNumberTaken is returned by OrderRepository.Add when another order
// already uses the same number.
var ErrOrderNumberTaken = errors.New("order number is already taken")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its menu link.
	// Returns ErrOrderNumberTaken when the order number is already in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves any order by id. Reserved for staff flows.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// GetOwned retrieves an order only if ownerID placed it. An order owned by
	// someone else is reported as not found.
	//
	// Example:
	//   o, err := repo.GetOwned(ctx, orderID, principal.UserID)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       // unknown id or not the caller's order
	//   }
	GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*order.Order, error)
}
