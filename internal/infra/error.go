package infra

import (
	"errors"

	"dining-concierge/internal/pkg/errs"
)

type ErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindDBFailure       ErrorKind = "DB_FAILURE"
	KindQueueFailure    ErrorKind = "QUEUE_FAILURE"
	KindDispatchFailure ErrorKind = "DISPATCH_FAILURE"
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// WrapErr wraps a low-level collaborator error with a kind. The kind defaults
// to KindDBFailure when omitted.
func WrapErr(msg string, err error, kinds ...ErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
