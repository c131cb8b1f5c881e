package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/pricing"
	"catering/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to an order.
//
// Changes are applied in this order: booking edits (repriced), material
// return, then the status transition, so a staff member can record the
// return and complete the order in one request. Only staff record returns. Every status change appends
// one history entry in the same transaction as the order update.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     pricing.Engine
	now        func() time.Time
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, engine pricing.Engine) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if cmd.Status() != nil && !principal.IsStaff() {
		return errs.NewAccessIsDeniedError("change the order status", principal.Role.String())
	}
	if returned := cmd.MaterialReturned(); returned != nil && *returned && !principal.IsStaff() {
		return errs.NewAccessIsDeniedError("record the material return", principal.Role.String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := loadOrderFor(ctx, orderRepo, cmd.OrderID(), principal)
	if err != nil {
		return err
	}

	changes := cmd.BookingChanges()
	if !principal.IsStaff() {
		changes.MaterialBack = cmd.MaterialReturned()
	}
	if !changes.IsEmpty() {
		owner, ownerErr := uow.CustomerRepository().Get(ctx, o.OwnerID())
		if ownerErr != nil {
			return ownerErr
		}
		if err = o.Edit(changes, owner, h.engine); err != nil {
			return err
		}
	}

	if returned := cmd.MaterialReturned(); returned != nil && principal.IsStaff() {
		if err = o.SetMaterialReturned(*returned); err != nil {
			return err
		}
	}

	if next := cmd.Status(); next != nil {
		if err = o.TransitionTo(*next, principal.UserID, h.now()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
