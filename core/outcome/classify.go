package outcome

import (
	"errors"
	"net/http"
)

// Operation names the kind of upstream call being classified. The same
// status code means different things depending on what was asked.
type Operation uint8

const (
	// Login is a credential check against the upstream.
	Login Operation = iota + 1
	// Register creates an upstream account.
	Register
	// Proxy is any authenticated call made on behalf of a session.
	Proxy
)

func (op Operation) String() string {
	switch op {
	case Login:
		return "login"
	case Register:
		return "register"
	case Proxy:
		return "proxy"
	default:
		return "unknown"
	}
}

var (
	// ErrUnexpectedStatus is the cause attached to statuses with no mapping.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	// ErrMalformedPayload is the cause attached to 200 OK bodies that fail to decode.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrTransport is the cause attached to failed upstream round trips.
	ErrTransport = errors.New("upstream transport failure")
)

// Result is everything known about one finished upstream call.
// TransportErr is set when no response was received at all; DecodeErr is
// set when a 200 OK body could not be decoded.
type Result struct {
	Op           Operation
	Status       int
	TransportErr error
	DecodeErr    error
}

// Classify maps an upstream call result onto a failure, or nil when the
// call succeeded and its payload decoded.
func Classify(res Result) *Error {
	if res.TransportErr != nil {
		return New(InternalFailure, errors.Join(ErrTransport, res.TransportErr))
	}

	if res.Status == http.StatusOK {
		if res.DecodeErr != nil {
			return New(Unknown, errors.Join(ErrMalformedPayload, res.DecodeErr))
		}
		return nil
	}

	if c, ok := statusCategory(res.Op, res.Status); ok {
		return New(c, nil)
	}
	return New(InternalFailure, &StatusError{Op: res.Op, Status: res.Status})
}

func statusCategory(op Operation, status int) (Category, bool) {
	switch op {
	case Login:
		switch status {
		case http.StatusUnauthorized:
			return InvalidCredentials, true
		case http.StatusNotFound:
			return UserNotFound, true
		}
	case Register:
		if status == http.StatusConflict {
			return UserAlreadyExists, true
		}
	case Proxy:
		switch status {
		case http.StatusUnauthorized:
			return Unauthenticated, true
		case http.StatusNotFound:
			return NotFound, true
		case http.StatusBadRequest:
			return BadRequest, true
		}
	}
	return Unknown, false
}

// StatusError records an upstream status that has no category of its own.
type StatusError struct {
	Op     Operation
	Status int
}

func (e *StatusError) Error() string {
	return ErrUnexpectedStatus.Error() + " " + http.StatusText(e.Status) + " on " + e.Op.String()
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
