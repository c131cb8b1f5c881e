package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrListMenuStatsQueryIsNotConstructed = errors.New(
	"ListMenuStatsQuery must be created via NewListMenuStatsQuery constructor",
)

// ListMenuStatsQuery reads the per-menu daily rollups for the calendar days
// from..to, both inclusive. Only the date part of from and to is used.
type ListMenuStatsQuery struct {
	principal kernel.Principal
	from      time.Time
	to        time.Time
	guard     guard.ConstructorGuard
}

func NewListMenuStatsQuery(principal kernel.Principal, from, to time.Time) (ListMenuStatsQuery, error) {
	var errList []error
	if principal.UserID == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("principal"))
	}
	if from.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("from"))
	}
	if to.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("to"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListMenuStatsQuery{}, err
	}
	if to.Before(from) {
		return ListMenuStatsQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			errors.New("range end is before its start"))
	}

	return ListMenuStatsQuery{principal: principal, from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuStatsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuStatsQueryIsNotConstructed)
}

func (q ListMenuStatsQuery) Principal() kernel.Principal { return q.principal }
func (q ListMenuStatsQuery) From() time.Time             { return q.from }
func (q ListMenuStatsQuery) To() time.Time               { return q.to }
