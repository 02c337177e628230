// Package serrors provides semantic error kinds. Carrier clients classify
// upstream failures into kinds and the orchestrator decides on retry and
// fallback by kind alone, without inspecting carrier-specific errors.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Only values created by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind returns a new sentinel kind named name.
func NewKind(name string) Kind { return kind{name: name} }

var (
	// ErrNotFound marks an unknown tracking number or resource.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized marks rejected or missing credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden marks a caller that is authenticated but not allowed.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest marks input the callee refused as malformed.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict marks a write that collides with existing state.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal marks a local failure unrelated to any upstream.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout marks an outbound call that exceeded its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable marks a transport failure: network error, 5xx or a
	// payload that could not be decoded.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited marks an upstream that throttled the call.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// FromHTTPStatus classifies a non-2xx status returned by an upstream API.
//
//	401, 403      ErrUnauthorized
//	404           ErrNotFound
//	408, 504      ErrTimeout
//	429           ErrRateLimited
//	other 4xx     ErrBadRequest
//	anything else ErrUnavailable
func FromHTTPStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return ErrTimeout
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 400 && code < 500:
		return ErrBadRequest
	default:
		return ErrUnavailable
	}
}

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match both the kind and anything in the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err, with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "msg: cause", falling back to whichever is set and then to
// the kind name.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap returns the cause so errors.Is and errors.As walk into it.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind and then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As matches target against the kind and then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first *Error in err's chain, or nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return nil
}

// IsAny reports whether err matches any of kinds.
func IsAny(err error, kinds ...Kind) bool {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return true
		}
	}

	return false
}
