package order

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
)

var (
	// ErrMaterialNotReturned is the cause attached when an order with loaned
	// material tries to complete straight from delivery.
	ErrMaterialNotReturned = errors.New("loaned material must be returned first")
	// ErrNoMaterialLoaned is the cause attached when an order without loaned
	// material tries to wait for a material return.
	ErrNoMaterialLoaned = errors.New("no material was loaned")
	// ErrMaterialReturnIsStaffOnly is the cause attached when an owner tries
	// to declare loaned material returned.
	ErrMaterialReturnIsStaffOnly = errors.New("material return is recorded by staff")
	// ErrMaterialNotDelivered is the cause attached when a return is recorded
	// before the order went out for delivery.
	ErrMaterialNotDelivered = errors.New("material has not been delivered yet")
)

// Status represents the lifecycle state of a catering order.
//
// State transitions:
//
//	Pending ──> Accepted ──> InPreparation ──> InDelivery ──┬──────────────────────────────┬──> Completed
//	   │                                                    └──> AwaitingMaterialReturn ───┘
//	   └──> Cancelled
//
// AwaitingMaterialReturn is only entered when material was loaned and is not
// back yet. Completed and Cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	InPreparation
	InDelivery
	AwaitingMaterialReturn
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:                "pending",
	Accepted:               "accepted",
	InPreparation:          "in_preparation",
	InDelivery:             "in_delivery",
	AwaitingMaterialReturn: "awaiting_material_return",
	Completed:              "completed",
	Cancelled:              "cancelled",
}

// successors lists the statuses reachable in one step, ignoring material rules.
var successors = map[Status][]Status{
	Pending:                {Accepted, Cancelled},
	Accepted:               {InPreparation},
	InPreparation:          {InDelivery},
	InDelivery:             {AwaitingMaterialReturn, Completed},
	AwaitingMaterialReturn: {Completed},
}

// ParseStatus converts the persisted/wire name of a status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("statut", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsTrackable reports whether the customer can follow the order timeline.
// Tracking opens once staff accepted the order.
func (s Status) IsTrackable() bool {
	return s != Pending && s != Cancelled && s.Validate() == nil
}

// CanTransitionTo checks a single step of the state machine.
// materialLoaned and materialReturned drive the branch after InDelivery.
func (s Status) CanTransitionTo(next Status, materialLoaned, materialReturned bool) error {
	if err := next.Validate(); err != nil {
		return err
	}

	allowed := false
	for _, candidate := range successors[s] {
		if candidate == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return errs.NewTransitionIsNotAllowedError(s.String(), next.String())
	}

	if s == InDelivery {
		waiting := materialLoaned && !materialReturned
		if next == Completed && waiting {
			return errs.NewTransitionIsNotAllowedErrorWithCause(s.String(), next.String(), ErrMaterialNotReturned)
		}
		if next == AwaitingMaterialReturn && !waiting {
			return errs.NewTransitionIsNotAllowedErrorWithCause(s.String(), next.String(), ErrNoMaterialLoaned)
		}
	}

	return nil
}
