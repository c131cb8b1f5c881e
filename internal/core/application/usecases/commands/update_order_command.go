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

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderPatch lists the fields of a partial update. Nil fields are left
// unchanged; at least one must be set.
type UpdateOrderPatch struct {
	ServiceDate      *time.Time
	DeliveryTime     *string
	Headcount        *int
	Status           *string
	MaterialLoan     *bool
	MaterialReturned *bool
}

// UpdateOrderCommand edits a booking or moves an order along its lifecycle.
//
// Booking fields (date, time, headcount, material loan) follow the owner
// edit rules and are only accepted while the order is pending. Status and
// material return changes are staff operations.
//
// Example:
//
//	status := "accepted"
//	cmd, err := NewUpdateOrderCommand(principal, orderID, UpdateOrderPatch{Status: &status})
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   uuid.UUID

	serviceDate      *time.Time
	deliveryTime     *kernel.DeliveryTime
	headcount        *int
	status           *order.Status
	materialLoan     *bool
	materialReturned *bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(principal kernel.Principal, orderID uuid.UUID, patch UpdateOrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		principal:        principal,
		orderID:          orderID,
		serviceDate:      patch.ServiceDate,
		headcount:        patch.Headcount,
		materialLoan:     patch.MaterialLoan,
		materialReturned: patch.MaterialReturned,
		guard:            guard.NewConstructorGuard(),
	}

	var errList []error
	if principal.UserID == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("principal"))
	}
	if orderID == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("order id"))
	}
	if patch.DeliveryTime != nil {
		t, err := kernel.NewDeliveryTime(*patch.DeliveryTime)
		errList = append(errList, err)
		cmd.deliveryTime = &t
	}
	if patch.Status != nil {
		st, err := order.ParseStatus(*patch.Status)
		errList = append(errList, err)
		cmd.status = &st
	}
	if patch.Headcount != nil && *patch.Headcount < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("nombre_personne", *patch.Headcount, 1, nil))
	}
	if patch.ServiceDate != nil && patch.ServiceDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("date_prestation"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderCommand{}, err
	}

	if !cmd.HasBookingChanges() && cmd.status == nil && cmd.materialReturned == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() kernel.Principal { return c.principal }
func (c UpdateOrderCommand) OrderID() uuid.UUID          { return c.orderID }
func (c UpdateOrderCommand) Status() *order.Status       { return c.status }
func (c UpdateOrderCommand) MaterialReturned() *bool     { return c.materialReturned }

// HasBookingChanges reports whether the command touches owner-editable fields.
func (c UpdateOrderCommand) HasBookingChanges() bool {
	return c.serviceDate != nil || c.deliveryTime != nil || c.headcount != nil || c.materialLoan != nil
}

// BookingChanges returns the owner-editable part of the command.
func (c UpdateOrderCommand) BookingChanges() order.Changes {
	return order.Changes{
		ServiceDate:  c.serviceDate,
		DeliveryTime: c.deliveryTime,
		Headcount:    c.headcount,
		MaterialLoan: c.materialLoan,
	}
}
