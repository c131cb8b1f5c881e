package commands

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing a catering order.
// The caller becomes the owner of the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, menuID, serviceDate, "12:30", 9,
//	    "12 rue Sainte-Catherine, Bordeaux", false, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal    kernel.Principal
	menuID       uuid.UUID
	serviceDate  time.Time
	deliveryTime kernel.DeliveryTime
	headcount    int
	address      kernel.Address
	materialLoan bool
	materialBack bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Rules that need the
// menu (minimum headcount) are checked by the handler. materialBack is part
// of the request but only false is accepted: staff record returns later.
func NewCreateOrderCommand(
	principal kernel.Principal,
	menuID uuid.UUID,
	serviceDate time.Time,
	deliveryTime string,
	headcount int,
	address string,
	materialLoan bool,
	materialBack bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		principal:    principal,
		materialLoan: materialLoan,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setMenuID(menuID),
		cmd.setServiceDate(serviceDate),
		cmd.setDeliveryTime(deliveryTime),
		cmd.setHeadcount(headcount),
		cmd.setAddress(address),
		cmd.setMaterialReturned(materialBack),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() kernel.Principal       { return c.principal }
func (c CreateOrderCommand) MenuID() uuid.UUID                 { return c.menuID }
func (c CreateOrderCommand) ServiceDate() time.Time            { return c.serviceDate }
func (c CreateOrderCommand) DeliveryTime() kernel.DeliveryTime { return c.deliveryTime }
func (c CreateOrderCommand) Headcount() int                    { return c.headcount }
func (c CreateOrderCommand) Address() kernel.Address           { return c.address }
func (c CreateOrderCommand) MaterialLoan() bool                { return c.materialLoan }
func (c CreateOrderCommand) MaterialReturned() bool            { return c.materialBack }

func (c *CreateOrderCommand) setPrincipal(p kernel.Principal) error {
	if p.UserID == uuid.Nil {
		return errs.NewValueIsRequiredError("principal")
	}
	c.principal = p
	return nil
}

func (c *CreateOrderCommand) setMenuID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("menu_id")
	}
	c.menuID = id
	return nil
}

func (c *CreateOrderCommand) setServiceDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("date_prestation")
	}
	c.serviceDate = d
	return nil
}

func (c *CreateOrderCommand) setDeliveryTime(s string) error {
	t, err := kernel.NewDeliveryTime(s)
	if err != nil {
		return err
	}
	c.deliveryTime = t
	return nil
}

func (c *CreateOrderCommand) setHeadcount(h int) error {
	if h < 1 {
		return errs.NewValueIsOutOfRangeError("nombre_personne", h, 1, nil)
	}
	c.headcount = h
	return nil
}

func (c *CreateOrderCommand) setAddress(s string) error {
	a, err := kernel.NewAddress(s)
	if err != nil {
		return err
	}
	c.address = a
	return nil
}

func (c *CreateOrderCommand) setMaterialReturned(returned bool) error {
	if returned {
		return errs.NewValueIsInvalidErrorWithCause("restitution_materiel", order.ErrMaterialReturnIsStaffOnly)
	}
	c.materialBack = false
	return nil
}
