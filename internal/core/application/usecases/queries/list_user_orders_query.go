package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery lists the orders the principal placed, most recent first.
//
// Example:
//
//	query, err := NewListUserOrdersQuery(principal)
//	orders, err := handler.Handle(ctx, query)
type ListUserOrdersQuery struct {
	principal kernel.Principal
	guard     guard.ConstructorGuard
}

func NewListUserOrdersQuery(principal kernel.Principal) (ListUserOrdersQuery, error) {
	if principal.UserID == uuid.Nil {
		return ListUserOrdersQuery{}, errs.NewValueIsRequiredError("principal")
	}
	return ListUserOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) Principal() kernel.Principal { return q.principal }
