package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrObjectNotFound         = errors.New("object not found")
	ErrTransitionIsNotAllowed = errors.New("transition is not allowed")
	ErrAccessIsDenied         = errors.New("access is denied")
)

// sanitize keeps user-provided values on a single line in error messages.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// causeIs lets errors.Is match the cause as well as the sentinel.
func causeIs(cause, target error) bool {
	return cause != nil && errors.Is(cause, target)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsInvalidError reports a malformed or semantically wrong value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsOutOfRangeError reports a value outside [Min, Max]. Max may be nil
// when the range is open-ended.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min))
	if e.Max != nil {
		msg += fmt.Sprintf(", max value is %s", sanitize(e.Max))
	}
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ObjectNotFoundError reports an unknown id. It is also used to conceal
// objects that exist but belong to someone else.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// TransitionIsNotAllowedError reports an operation that the current status
// of an object does not permit.
type TransitionIsNotAllowedError struct {
	From  string
	To    string
	Cause error
}

func NewTransitionIsNotAllowedError(from, to string) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{From: from, To: to}
}

func NewTransitionIsNotAllowedErrorWithCause(from, to string, cause error) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{From: from, To: to, Cause: cause}
}

func (e *TransitionIsNotAllowedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s", ErrTransitionIsNotAllowed, e.From, e.To), e.Cause)
}

func (e *TransitionIsNotAllowedError) Unwrap() error {
	return ErrTransitionIsNotAllowed
}

func (e *TransitionIsNotAllowedError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// AccessIsDeniedError reports an operation the caller's role may not perform.
type AccessIsDeniedError struct {
	Action string
	Role   string
}

func NewAccessIsDeniedError(action, role string) *AccessIsDeniedError {
	return &AccessIsDeniedError{Action: action, Role: role}
}

func (e *AccessIsDeniedError) Error() string {
	return fmt.Sprintf("%s: role %s may not %s", ErrAccessIsDenied, sanitize(e.Role), e.Action)
}

func (e *AccessIsDeniedError) Unwrap() error {
	return ErrAccessIsDenied
}
