package outcome

import (
	"errors"
	"fmt"
)

// Error is a failure tagged with its Category. It is the only error shape
// the HTTP boundary inspects when deciding where to send the client.
type Error struct {
	Category Category
	Cause    error
}

// New returns an *Error of the given category wrapping cause (which may be nil).
func New(c Category, cause error) *Error {
	return &Error{Category: c, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Category.String()
	}
	return fmt.Sprintf("%s: %v", e.Category, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports a match against another *Error of the same category, so
// errors.Is(err, outcome.ErrUnauthenticated) works for wrapped failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Cause == nil && t.Category == e.Category
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnknown              = &Error{Category: Unknown}
	ErrUnauthenticated      = &Error{Category: Unauthenticated}
	ErrInvalidCredentials   = &Error{Category: InvalidCredentials}
	ErrUserNotFound         = &Error{Category: UserNotFound}
	ErrUserAlreadyExists    = &Error{Category: UserAlreadyExists}
	ErrResponseBuildFailure = &Error{Category: ResponseBuildFailure}
	ErrBadRequest           = &Error{Category: BadRequest}
	ErrInternalFailure      = &Error{Category: InternalFailure}
	ErrNotFound             = &Error{Category: NotFound}
)

// CategoryOf returns the category of the first *Error in err's chain.
// Errors carrying no category are Unknown.
func CategoryOf(err error) Category {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Category
	}
	return Unknown
}
