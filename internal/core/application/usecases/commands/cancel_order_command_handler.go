package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler moves a pending order to cancelled. Owners cancel
// their own orders; staff may cancel any pending order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := loadOrderFor(ctx, orderRepo, cmd.OrderID(), cmd.Principal())
	if err != nil {
		return err
	}

	if err = o.Cancel(cmd.Principal().UserID, h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
