package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"catering/internal/pkg/errs"
)

// NumberPrefix starts every order number.
const NumberPrefix = "CMD-"

// Number is the human-readable order identifier shown to customers.
// It is a ULID: a millisecond timestamp followed by 80 random bits, so numbers
// sort by creation time and need no central sequence.
type Number string

// NewNumber generates a number for an order created at t.
func NewNumber(t time.Time) (Number, error) {
	id, err := ulid.New(ulid.Timestamp(t), ulid.DefaultEntropy())
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return Number(NumberPrefix + id.String()), nil
}

// ParseNumber validates a persisted order number.
func ParseNumber(s string) (Number, error) {
	raw, ok := strings.CutPrefix(s, NumberPrefix)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q has no %s prefix", s, NumberPrefix))
	}
	if _, err := ulid.ParseStrict(raw); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return Number(s), nil
}

// IssuedAt extracts the timestamp embedded in the number.
func (n Number) IssuedAt() time.Time {
	id, err := ulid.ParseStrict(strings.TrimPrefix(string(n), NumberPrefix))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(id.Time())
}

func (n Number) String() string {
	return string(n)
}
