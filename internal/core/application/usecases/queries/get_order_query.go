package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order as seen by principal: staff see every order,
// customers only their own.
type GetOrderQuery struct {
	principal kernel.Principal
	orderID   uuid.UUID
	guard     guard.ConstructorGuard
}

func NewGetOrderQuery(principal kernel.Principal, orderID uuid.UUID) (GetOrderQuery, error) {
	if principal.UserID == uuid.Nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("principal")
	}
	if orderID == uuid.Nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Principal() kernel.Principal { return q.principal }
func (q GetOrderQuery) OrderID() uuid.UUID          { return q.orderID }
