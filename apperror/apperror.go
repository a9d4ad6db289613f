// Package apperror defines the application error taxonomy and its mapping
// to HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Type categorizes an application error.
type Type int

const (
	Unknown Type = iota
	// Validation is bad user input, surfaced as an inline form error.
	Validation
	// Auth is an invalid-credentials failure during login.
	Auth
	// Unauthorized means the request needs an authenticated session.
	Unauthorized
	// NotFound is an unknown username or resource.
	NotFound
	// Database is a store-layer failure, fatal for the request.
	Database
)

// Error carries a user-facing message plus an optional underlying cause.
type Error struct {
	Type    Type
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status. Validation and Auth
// errors are normally rendered inline with HTTP 200 instead; this mapping
// applies when they reach a terminal response.
func (e *Error) StatusCode() int {
	switch e.Type {
	case Validation:
		return http.StatusBadRequest
	case Auth, Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(t Type, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

func NewValidation(message string) *Error {
	return New(Validation, message, nil)
}

func NewAuth(message string) *Error {
	return New(Auth, message, nil)
}

func NewUnauthorized(message string) *Error {
	return New(Unauthorized, message, nil)
}

func NewNotFound(message string) *Error {
	return New(NotFound, message, nil)
}

func NewDatabase(message string, err error) *Error {
	return New(Database, message, err)
}

// IsType reports whether any error in the chain is an *Error of type t.
func IsType(err error, t Type) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Type == t
}

func IsValidation(err error) bool { return IsType(err, Validation) }
func IsAuth(err error) bool       { return IsType(err, Auth) }
func IsNotFound(err error) bool   { return IsType(err, NotFound) }

// MessageOf returns the user-facing message of an *Error in the chain, or a
// generic message for anything else.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "Something went wrong"
}
