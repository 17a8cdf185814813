package domain

import (
	"fmt"
	"strings"
)

// AuthenticationError is a 401 with a caller-facing message (bad
// credentials, inactive account, invalid token).
type AuthenticationError struct {
	Msg string
}

func (e *AuthenticationError) Error() string { return e.Msg }

// NewAuthentication builds an AuthenticationError.
func NewAuthentication(msg string) *AuthenticationError {
	return &AuthenticationError{Msg: msg}
}

// AuthorizationError is a 403: the caller's role is not permitted.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// NewAuthorization builds an AuthorizationError.
func NewAuthorization(msg string) *AuthorizationError {
	return &AuthorizationError{Msg: msg}
}

// BadRequestError is a 400 with a single caller-facing message, used for
// malformed payloads outside of field-level validation.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

// NewBadRequest builds a BadRequestError.
func NewBadRequest(msg string) *BadRequestError {
	return &BadRequestError{Msg: msg}
}

// NotFoundError carries the offending id so the boundary can render
// "No item found with id : <id>". Msg, when set, replaces that rendering
// for lookups that have no single id (empty exports).
type NotFoundError struct {
	ID  string
	Msg string
}

func (e *NotFoundError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("No item found with id : %s", e.ID)
}

// NewNotFound builds a NotFoundError for the given id.
func NewNotFound(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// NewNotFoundMsg builds a NotFoundError with a custom message.
func NewNotFoundMsg(msg string) *NotFoundError {
	return &NotFoundError{Msg: msg}
}

// DuplicateKeyError names the field whose unique constraint was violated.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate value entered for %s field, please choose another value", e.Field)
}

// FieldError a single failed field with its message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every failing field of a payload. The rendered
// message concatenates all field messages so the caller sees the full list,
// not only the first failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ",")
}

// Add records a failing field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether the given field failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns the error when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
