package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery reads the status timeline of an order.
type GetOrderHistoryQuery struct {
	principal kernel.Principal
	orderID   uuid.UUID
	guard     guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(principal kernel.Principal, orderID uuid.UUID) (GetOrderHistoryQuery, error) {
	if principal.UserID == uuid.Nil {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("principal")
	}
	if orderID == uuid.Nil {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderHistoryQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) Principal() kernel.Principal { return q.principal }
func (q GetOrderHistoryQuery) OrderID() uuid.UUID          { return q.orderID }
