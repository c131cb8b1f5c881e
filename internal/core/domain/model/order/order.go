package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/pricing"
	"catering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// editAction names owner edits in TransitionIsNotAllowed errors.
const editAction = "edit"

// Order is the catering order aggregate root.
//
// Order follows these invariants:
//   - headcount is at least 1 and at least the menu minimum
//   - menuPrice and deliveryFee always come from the pricing engine for the
//     current headcount, so Total() never drifts from its inputs
//   - the owner and the menu are fixed at creation
//   - status only moves along the Status state machine
type Order struct {
	id           uuid.UUID
	number       Number
	createdAt    time.Time
	serviceDate  time.Time
	deliveryTime kernel.DeliveryTime
	menu         MenuSnapshot
	headcount    int
	address      kernel.Address
	menuPrice    decimal.Decimal
	deliveryFee  decimal.Decimal
	status       Status
	materialLoan bool
	materialBack bool
	ownerID      uuid.UUID

	transitions []Transition

	isConstructed bool
}

// Draft describes an order about to be placed.
type Draft struct {
	ID           uuid.UUID
	Number       Number
	Owner        customer.Customer
	Menu         MenuSnapshot
	ServiceDate  time.Time
	DeliveryTime kernel.DeliveryTime
	Headcount    int
	Address      kernel.Address
	MaterialLoan bool
	// MaterialBack must stay false: returns are recorded by staff later.
	MaterialBack bool
	CreatedAt    time.Time
}

// NewOrder validates a draft, prices it and records the creation transition
// (nil -> pending) on behalf of the owner.
//
// Example:
//
//	o, err := order.NewOrder(order.Draft{
//	    ID:           uuid.New(),
//	    Number:       number,
//	    Owner:        owner,
//	    Menu:         order.MenuSnapshot{ID: menuID, Title: "Buffet", UnitPrice: decimal.NewFromInt(20), MinHeadcount: 4},
//	    ServiceDate:  serviceDate,
//	    DeliveryTime: deliveryTime,
//	    Headcount:    9,
//	    Address:      address,
//	    CreatedAt:    now,
//	}, engine)
func NewOrder(d Draft, engine pricing.Engine) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     d.CreatedAt,
		materialLoan:  d.MaterialLoan,
		ownerID:       d.Owner.ID,
		isConstructed: true,
	}

	if err := errors.Join(
		ownerMaterialBack(d.MaterialBack),
		o.setID(d.ID),
		o.setNumber(d.Number),
		o.setOwner(d.Owner.ID),
		o.setMenu(d.Menu),
		o.setServiceDate(d.ServiceDate),
		o.setDeliveryTime(d.DeliveryTime),
		o.setHeadcount(d.Headcount),
		o.setAddress(d.Address),
	); err != nil {
		return nil, err
	}

	o.reprice(d.Owner, engine)
	o.record(nil, Pending, d.Owner.ID, d.CreatedAt)

	return o, nil
}

// RestoreParams carries persisted state back into an aggregate.
type RestoreParams struct {
	ID           uuid.UUID
	Number       Number
	CreatedAt    time.Time
	ServiceDate  time.Time
	DeliveryTime kernel.DeliveryTime
	Menu         MenuSnapshot
	Headcount    int
	Address      kernel.Address
	MenuPrice    decimal.Decimal
	DeliveryFee  decimal.Decimal
	Status       Status
	MaterialLoan bool
	MaterialBack bool
	OwnerID      uuid.UUID
}

// RestoreOrder rebuilds an order loaded from storage. It validates the shape
// of the data but does not reprice nor record transitions.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		createdAt:     p.CreatedAt,
		menuPrice:     p.MenuPrice,
		deliveryFee:   p.DeliveryFee,
		materialLoan:  p.MaterialLoan,
		materialBack:  p.MaterialBack,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setOwner(p.OwnerID),
		o.setMenu(p.Menu),
		o.setDeliveryTime(p.DeliveryTime),
		o.setAddress(p.Address),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if p.Headcount < 1 {
		return nil, errs.NewValueIsOutOfRangeError("nombre_personne", p.Headcount, 1, nil)
	}

	o.serviceDate = p.ServiceDate
	o.headcount = p.Headcount
	o.status = p.Status

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) Number() Number                    { return o.number }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) ServiceDate() time.Time            { return o.serviceDate }
func (o *Order) DeliveryTime() kernel.DeliveryTime { return o.deliveryTime }
func (o *Order) Menu() MenuSnapshot                { return o.menu }
func (o *Order) Headcount() int                    { return o.headcount }
func (o *Order) Address() kernel.Address           { return o.address }
func (o *Order) MenuPrice() decimal.Decimal        { return o.menuPrice }
func (o *Order) DeliveryFee() decimal.Decimal      { return o.deliveryFee }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) MaterialLoan() bool                { return o.materialLoan }
func (o *Order) MaterialReturned() bool            { return o.materialBack }
func (o *Order) OwnerID() uuid.UUID                { return o.ownerID }

// Total is the amount the customer pays.
func (o *Order) Total() decimal.Decimal {
	return o.menuPrice.Add(o.deliveryFee)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.ownerID == userID
}

// CreatedEvent describes the order for the statistics projection.
func (o *Order) CreatedEvent() CreatedEvent {
	return CreatedEvent{
		OrderID:     o.id,
		MenuID:      o.menu.ID,
		MenuTitle:   o.menu.Title,
		ServiceDate: o.serviceDate,
		Revenue:     o.Total(),
		OccurredAt:  o.createdAt,
	}
}

// Changes lists the fields an edit may touch. Nil fields are left unchanged.
type Changes struct {
	ServiceDate  *time.Time
	DeliveryTime *kernel.DeliveryTime
	Headcount    *int
	MaterialLoan *bool
	MaterialBack *bool
}

func (c Changes) IsEmpty() bool {
	return c.ServiceDate == nil && c.DeliveryTime == nil && c.Headcount == nil &&
		c.MaterialLoan == nil && c.MaterialBack == nil
}

// Edit applies booking changes. Only pending orders are editable; the price
// is recomputed from the (possibly new) headcount. owner must be the order's
// owner record, it provides the postal address used for the delivery fee.
func (o *Order) Edit(c Changes, owner customer.Customer, engine pricing.Engine) error {
	if o.status != Pending {
		return errs.NewTransitionIsNotAllowedError(o.status.String(), editAction)
	}
	if c.IsEmpty() {
		return errs.NewValueIsRequiredError("at least one field to update")
	}
	if owner.ID != o.ownerID {
		return errs.NewValueIsInvalidError("owner")
	}
	if c.MaterialBack != nil {
		if err := ownerMaterialBack(*c.MaterialBack); err != nil {
			return err
		}
	}

	var errList []error
	if c.ServiceDate != nil {
		errList = append(errList, o.setServiceDate(*c.ServiceDate))
	}
	if c.DeliveryTime != nil {
		errList = append(errList, o.setDeliveryTime(*c.DeliveryTime))
	}
	if c.Headcount != nil {
		errList = append(errList, o.setHeadcount(*c.Headcount))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if c.MaterialLoan != nil {
		o.materialLoan = *c.MaterialLoan
		if !o.materialLoan {
			o.materialBack = false
		}
	}

	o.reprice(owner, engine)
	return nil
}

// Cancel moves a pending order to Cancelled. The row and its history are kept.
func (o *Order) Cancel(actorID uuid.UUID, at time.Time) error {
	return o.TransitionTo(Cancelled, actorID, at)
}

// TransitionTo moves the order one step along the state machine and records
// the transition. Completing an order that waited for its material marks the
// material as returned.
func (o *Order) TransitionTo(next Status, actorID uuid.UUID, at time.Time) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actor")
	}
	if err := o.status.CanTransitionTo(next, o.materialLoan, o.materialBack); err != nil {
		return err
	}

	if o.status == AwaitingMaterialReturn && next == Completed {
		o.materialBack = true
	}

	prev := o.status
	o.status = next
	o.record(&prev, next, actorID, at)
	return nil
}

// SetMaterialReturned records the return (or not) of loaned material on
// behalf of staff. A return can only be recorded once the material went out,
// that is in delivery or while awaiting its return.
func (o *Order) SetMaterialReturned(returned bool) error {
	if o.status.IsTerminal() {
		return errs.NewTransitionIsNotAllowedError(o.status.String(), editAction)
	}
	if returned && !o.materialLoan {
		return errs.NewValueIsInvalidErrorWithCause("restitution_materiel", ErrNoMaterialLoaned)
	}
	if returned && o.status != InDelivery && o.status != AwaitingMaterialReturn {
		return errs.NewValueIsInvalidErrorWithCause("restitution_materiel", ErrMaterialNotDelivered)
	}
	o.materialBack = returned
	return nil
}

// ownerMaterialBack accepts only "not returned" from the order owner.
func ownerMaterialBack(returned bool) error {
	if returned {
		return errs.NewValueIsInvalidErrorWithCause("restitution_materiel", ErrMaterialReturnIsStaffOnly)
	}
	return nil
}

// Transitions returns the status changes recorded since the order was built
// or last flushed.
func (o *Order) Transitions() []Transition {
	out := make([]Transition, len(o.transitions))
	copy(out, o.transitions)
	return out
}

// ClearTransitions forgets recorded transitions once they are persisted.
func (o *Order) ClearTransitions() {
	o.transitions = nil
}

func (o *Order) record(from *Status, to Status, actorID uuid.UUID, at time.Time) {
	o.transitions = append(o.transitions, Transition{From: from, To: to, ActorID: actorID, At: at})
}

func (o *Order) reprice(owner customer.Customer, engine pricing.Engine) {
	q := engine.Quote(pricing.Input{
		UnitPrice:       o.menu.UnitPrice,
		MinHeadcount:    o.menu.MinHeadcount,
		Headcount:       o.headcount,
		ServiceAddress:  o.address,
		CustomerAddress: owner.PostalAddress,
		CustomerCity:    owner.City,
	})
	o.menuPrice = q.MenuPrice
	o.deliveryFee = q.DeliveryFee
}

func (o *Order) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if _, err := ParseNumber(n.String()); err != nil {
		return err
	}
	o.number = n
	return nil
}

func (o *Order) setOwner(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("owner")
	}
	o.ownerID = id
	return nil
}

func (o *Order) setMenu(m MenuSnapshot) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.menu = m
	return nil
}

// setServiceDate keeps the calendar date only and rejects dates before the
// order's creation day.
func (o *Order) setServiceDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("date_prestation")
	}
	day := DateOnly(d)
	if !o.createdAt.IsZero() && day.Before(DateOnly(o.createdAt)) {
		return errs.NewValueIsInvalidErrorWithCause("date_prestation",
			fmt.Errorf("%s is before the order date", day.Format(time.DateOnly)))
	}
	o.serviceDate = day
	return nil
}

func (o *Order) setDeliveryTime(t kernel.DeliveryTime) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.deliveryTime = t
	return nil
}

func (o *Order) setHeadcount(h int) error {
	if h < 1 {
		return errs.NewValueIsOutOfRangeError("nombre_personne", h, 1, nil)
	}
	if h < o.menu.MinHeadcount {
		return errs.NewValueIsOutOfRangeError("nombre_personne", h, o.menu.MinHeadcount, nil)
	}
	o.headcount = h
	return nil
}

func (o *Order) setAddress(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredError("adresse_prestation")
	}
	o.address = a
	return nil
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
