package pos

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed call. Every kind maps to one operator-facing
// message; none of them is retried automatically.
type Kind string

const (
	// KindNetwork — the request never produced a response.
	KindNetwork Kind = "network"
	// KindNotFound — the resource is gone (404). Some operations absorb
	// this (current order lookup, menu item delete); the rest surface it.
	KindNotFound Kind = "not_found"
	// KindConflict — the service refused a duplicate (409), e.g. a second
	// active order for one table.
	KindConflict Kind = "conflict"
	// KindValidation — the input was rejected before any request was sent.
	KindValidation Kind = "validation"
	// KindRemote — any other non-2xx answer, including rejected status
	// transitions.
	KindRemote Kind = "remote"
)

// APIError is the single error type the client returns. Its message is
// short and printable as-is at the counter.
type APIError struct {
	Op      string // operation label, e.g. "create_order"
	Kind    Kind
	Status  int               // HTTP status, 0 for network/validation
	Message string            // operator-facing text
	Fields  map[string]string // per-field messages for KindValidation
	Err     error             // underlying cause, for logs
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindNetwork:
		return "cannot reach the POS service"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "the request conflicts with the current state"
	case KindValidation:
		return "invalid input"
	default:
		return "the POS service rejected the request"
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a not-found API error.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == KindNotFound
}

// IsConflict reports whether err is a conflict API error.
func IsConflict(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == KindConflict
}

// IsValidation reports whether err was raised before a request was sent.
func IsValidation(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == KindValidation
}

func validationError(op string, fields map[string]string) *APIError {
	msgs := make([]string, 0, len(fields))
	for _, m := range fields {
		msgs = append(msgs, m)
	}
	return &APIError{
		Op:      op,
		Kind:    KindValidation,
		Message: strings.Join(msgs, " "),
		Fields:  fields,
	}
}

func networkError(op string, err error) *APIError {
	return &APIError{Op: op, Kind: KindNetwork, Err: err}
}

// statusError maps a non-2xx response to an APIError, pulling the service's
// own message out of the body when it sent one.
func statusError(op string, status int, body []byte) *APIError {
	kind := KindRemote
	switch {
	case status == 404:
		kind = KindNotFound
	case status == 409:
		kind = KindConflict
	case status == 400 || status == 422:
		kind = KindValidation
	}

	return &APIError{
		Op:      op,
		Kind:    kind,
		Status:  status,
		Message: remoteMessage(body),
		Err:     fmt.Errorf("%s: status %d", op, status),
	}
}

// remoteMessage extracts a human message from an error body shaped either
// {"message": "..."} or {"error": "..."}.
func remoteMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
