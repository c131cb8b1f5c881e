package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/pricing"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxOrderNumberAttempts bounds the retries on an order number collision.
const MaxOrderNumberAttempts = 3

// CreateOrderCommandHandler places orders.
//
// In one transaction it prices the order, inserts it with its menu link and
// its creation history entry, and enqueues the OrderCreated event for the
// statistics projection. The confirmation is sent after commit; a
// notification failure is logged and does not fail the request.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, engine, notifier, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	engine     pricing.Engine
	notifier   ports.Notifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	engine pricing.Engine,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		notifier:   notifier,
		logger:     logger.With("component", "create_order"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle creates the order and returns its id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uuid.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return uuid.Nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menu, err := uow.MenuRepository().Get(ctx, cmd.MenuID())
	if err != nil {
		return uuid.Nil, asInvalidReference("menu_id", err)
	}

	owner, err := uow.CustomerRepository().Get(ctx, cmd.Principal().UserID)
	if err != nil {
		return uuid.Nil, asInvalidReference("user", err)
	}

	now := h.now()
	orderRepo := uow.OrderRepository()

	var created *order.Order
	for attempt := 1; ; attempt++ {
		number, numErr := order.NewNumber(now)
		if numErr != nil {
			return uuid.Nil, numErr
		}

		created, err = order.NewOrder(order.Draft{
			ID:           uuid.New(),
			Number:       number,
			Owner:        owner,
			Menu:         menu,
			ServiceDate:  cmd.ServiceDate(),
			DeliveryTime: cmd.DeliveryTime(),
			Headcount:    cmd.Headcount(),
			Address:      cmd.Address(),
			MaterialLoan: cmd.MaterialLoan(),
			MaterialBack: cmd.MaterialReturned(),
			CreatedAt:    now,
		}, h.engine)
		if err != nil {
			return uuid.Nil, err
		}

		err = orderRepo.Add(ctx, created)
		if err == nil {
			break
		}
		if !errors.Is(err, ports.ErrOrderNumberTaken) || attempt == MaxOrderNumberAttempts {
			return uuid.Nil, err
		}
		h.logger.WarnContext(ctx, "Order number collision, retrying", "number", number.String(), "attempt", attempt)
	}

	if err = uow.OutboxRepository().Add(ctx, created.CreatedEvent()); err != nil {
		return uuid.Nil, fmt.Errorf("enqueue order event: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	msg := ports.OrderConfirmation{
		Recipient:    owner.Email,
		FirstName:    owner.FirstName,
		Number:       created.Number().String(),
		MenuTitle:    menu.Title,
		ServiceDate:  created.ServiceDate(),
		DeliveryTime: created.DeliveryTime().String(),
		Headcount:    created.Headcount(),
		Total:        created.Total(),
	}
	if notifyErr := h.notifier.OrderCreated(ctx, msg); notifyErr != nil {
		h.logger.WarnContext(ctx, "Order confirmation failed", "order_id", created.ID(), "error", notifyErr)
	}

	return created.ID(), nil
}

// asInvalidReference turns an unknown referenced id into a validation error.
func asInvalidReference(param string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return err
}
