package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"github.com/google/uuid"
)

// loadOrderFor returns the order as visible to p: staff see every order,
// customers only their own, anything else is not found.
func loadOrderFor(ctx context.Context, repo ports.OrderRepository, id uuid.UUID, p kernel.Principal) (*order.Order, error) {
	if p.IsStaff() {
		return repo.Get(ctx, id)
	}
	return repo.GetOwned(ctx, id, p.UserID)
}
