package scheduling

import (
	"errors"
	"fmt"
)

// Kind classifies a scheduling rejection so transport layers can map it to a
// status code without string matching.
type Kind string

const (
	KindValidation   Kind = "validationError" // malformed date/time, bad granularity, unknown references
	KindNotFound     Kind = "notFound"        // unknown barber/service/booking/user
	KindOutOfHours   Kind = "outOfHours"      // closed day or time outside the working window
	KindConflict     Kind = "conflict"        // slot already taken
	KindInvalidState Kind = "invalidState"    // illegal lifecycle transition
	KindForbidden    Kind = "forbidden"       // caller does not own the booking
)

// Error is a rejection from the scheduling core.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from an error chain; unknown errors report as an
// empty Kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
