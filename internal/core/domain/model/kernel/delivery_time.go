package kernel

import (
	"fmt"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

const deliveryTimeLayout = "15:04"

var ErrDeliveryTimeIsNotConstructed = errs.NewValueIsRequiredError("delivery time must be created via NewDeliveryTime")

// DeliveryTime is the requested wall-clock delivery time of an order, "HH:MM" on a 24h clock.
type DeliveryTime struct { //nolint:recvcheck //using for validation
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewDeliveryTime parses "HH:MM". Single-digit hours ("9:30") are rejected.
func NewDeliveryTime(value string) (DeliveryTime, error) {
	if value == "" {
		return DeliveryTime{}, errs.NewValueIsRequiredError("heure_livraison")
	}
	t, err := time.Parse(deliveryTimeLayout, value)
	if err != nil || len(value) != len(deliveryTimeLayout) {
		return DeliveryTime{}, errs.NewValueIsInvalidErrorWithCause("heure_livraison",
			fmt.Errorf("%q is not in HH:MM format", value))
	}
	return DeliveryTime{hour: t.Hour(), minute: t.Minute(), guard: guard.NewConstructorGuard()}, nil
}

func (d DeliveryTime) Validate() error {
	return d.guard.Validate(ErrDeliveryTimeIsNotConstructed)
}

func (d DeliveryTime) Hour() int {
	return d.hour
}

func (d DeliveryTime) Minute() int {
	return d.minute
}

func (d DeliveryTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.hour, d.minute)
}
