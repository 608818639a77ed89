package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel to err so callers can match it with errors.Is
// while the original cause stays intact for logging. The sentinel rides the
// standard Unwrap chain; cockroachdb's Mark keeps its marks outside that
// chain, which hides them from stdlib errors.Is and testify's ErrorIs.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return &markedError{cause: err, mark: sentinel}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Unwrap() []error {
	return []error{e.cause, e.mark}
}
