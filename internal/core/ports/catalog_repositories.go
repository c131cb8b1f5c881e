package ports

import (
	"context"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// MenuRepository reads the menus orders are placed against.
type MenuRepository interface {
	// Get returns the snapshot of a menu, or an ObjectNotFoundError.
	Get(ctx context.Context, id uuid.UUID) (order.MenuSnapshot, error)
}

// CustomerRepository reads user accounts.
type CustomerRepository interface {
	// Get returns a customer, or an ObjectNotFoundError.
	Get(ctx context.Context, id uuid.UUID) (customer.Customer, error)
}
