// Package customer holds the read model of the people who place orders.
// Customers are managed by the account service; this module only reads them.
package customer

import (
	"github.com/google/uuid"

	"catering/internal/core/domain/model/kernel"
)

// Customer is the subset of a user account the order lifecycle needs:
// who to notify and where they live, for delivery pricing.
//
// PostalAddress is the zero Address when the profile has none.
type Customer struct {
	ID            uuid.UUID
	Email         string
	FirstName     string
	PostalAddress kernel.Address
	City          string
	Role          kernel.Role
}

// HasPostalAddress reports whether the profile carries a postal address.
func (c Customer) HasPostalAddress() bool {
	return c.PostalAddress.Validate() == nil
}
