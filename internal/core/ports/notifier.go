package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderConfirmation is the summary sent to a customer after order creation.
type OrderConfirmation struct {
	Recipient    string
	FirstName    string
	Number       string
	MenuTitle    string
	ServiceDate  time.Time
	DeliveryTime string
	Headcount    int
	Total        decimal.Decimal
}

// Notifier delivers messages to customers. Delivery is best effort: callers
// log failures and carry on.
type Notifier interface {
	OrderCreated(ctx context.Context, msg OrderConfirmation) error
}
