package kernel

import (
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

// AddressMaxLength matches the width of the address columns.
const AddressMaxLength = 255

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a free-form address line. Two addresses are equal when they match
// after trimming, collapsing inner whitespace and case folding.
//
// Example:
//
//	a, _ := kernel.NewAddress("12 rue Sainte-Catherine, 33000 Bordeaux")
//	b, _ := kernel.NewAddress("12  Rue Sainte-Catherine, 33000 BORDEAUX ")
//	a.Equal(b) // true
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress validates and normalises an address line.
func NewAddress(value string) (Address, error) {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(value) > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(value), 1, AddressMaxLength)
	}
	return Address{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.value
}

// Equal reports whether both addresses designate the same place for pricing purposes.
func (a Address) Equal(other Address) bool {
	return strings.EqualFold(a.value, other.value)
}

// SameCity compares two city names the same way Address.Equal compares addresses.
func SameCity(a, b string) bool {
	return strings.EqualFold(strings.Join(strings.Fields(a), " "), strings.Join(strings.Fields(b), " "))
}
