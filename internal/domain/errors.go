package domain

import (
	"errors"
	"fmt"
)

// The gateway classifies every failure into one of four kinds and applies a
// single presentation policy per kind at the HTTP layer:
//   - ValidationError: field-scoped, caught before any upstream call.
//   - AuthError: 401 from upstream or no session; clears the session and
//     redirects to login, no retry.
//   - DomainError (and its NotFound/Conflict refinements): upstream
//     business-rule violations surfaced verbatim, no automatic retry.
//   - TransportError: network-level failures, surfaced generically.

// DomainError carries an upstream business-rule violation.
type DomainError struct {
	Code string
	Msg  string
	Err  error
}

func (e DomainError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Code != "" {
		return e.Code
	}
	return "domain error"
}

func (e DomainError) Unwrap() error { return e.Err }

// AuthError means the caller is not (or no longer) authenticated.
type AuthError struct {
	Msg string
	Err error
}

func (e AuthError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "authentication required"
}

func (e AuthError) Unwrap() error { return e.Err }

// NotFoundError names the missing resource; Msg, when set, carries the
// upstream's own wording verbatim.
type NotFoundError struct {
	Resource string
	Msg      string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError is field-scoped; Field uses the same path keys the form
// uses (e.g. "contact-email", "additional-0-name").
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// TransportError wraps network-level failures talking to the upstream
// backend. Callers surface these as a generic message, never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e TransportError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("upstream request failed: %s", e.Op)
	}
	return "upstream request failed"
}

func (e TransportError) Unwrap() error { return e.Err }

func IsDomain(err error) bool {
	var target DomainError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsTransport(err error) bool {
	var target TransportError
	return errors.As(err, &target)
}
