package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a pending order. The row and its history are kept.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   uuid.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(principal kernel.Principal, orderID uuid.UUID) (CancelOrderCommand, error) {
	var errList []error
	if principal.UserID == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("principal"))
	}
	if orderID == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("order id"))
	}
	if err := errors.Join(errList...); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Principal() kernel.Principal { return c.principal }
func (c CancelOrderCommand) OrderID() uuid.UUID          { return c.orderID }
