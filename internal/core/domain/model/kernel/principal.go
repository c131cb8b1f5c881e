package kernel

import (
	"github.com/google/uuid"

	"catering/internal/pkg/errs"
)

// Role is the authorization role carried by an authenticated caller.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// ParseRole accepts the role names issued in access tokens.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return r, nil
	}
	return "", errs.NewValueIsInvalidError("role " + s)
}

// IsStaff reports whether the role may drive orders past the pending state.
func (r Role) IsStaff() bool {
	return r == RoleEmployee || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// Principal is the verified caller of an operation. It is resolved by the
// authentication middleware and trusted as-is by the use cases.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func NewPrincipal(userID uuid.UUID, role Role) (Principal, error) {
	if userID == uuid.Nil {
		return Principal{}, errs.NewValueIsRequiredError("principal user id")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: role}, nil
}

func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}
