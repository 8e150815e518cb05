// Package errs defines the structured error and result model shared by
// every layer of the service. Expected failures (missing arguments,
// absent records, storage faults) travel as values; panics are reserved
// for contract violations such as reading the value of a failed result.
package errs

import (
	"fmt"
	"strings"
)

// Stable machine-readable error codes. The transport layer maps these to
// HTTP statuses; nothing below the transport ever inspects the message.
const (
	CodeNotFound        = "record.not.found"
	CodeValueEmpty      = "value.is.empty"
	CodeValueRequired   = "value.is.required"
	CodeIllegalState    = "illegal.state"
	CodeStorage         = "storage.error"
	CodeDeserialization = "deserialization.error"
	CodeSerialization   = "serialization.error"
	CodeValidation      = "validation.error"
)

// FieldError carries one field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a structured, transport-agnostic failure: a stable
// dot-separated code plus a human-readable message. Fields is only
// populated for request-validation failures.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"validation_errors,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, ", "))
}

// Is matches errors by code so callers can use errors.Is with a sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NotFound reports that a domain entity does not exist.
func NotFound(entity string, id any) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s not found with ID '%v'", entity, id))
}

// ValueIsEmpty reports a blank or zero-valued argument.
func ValueIsEmpty(field string) *Error {
	return New(CodeValueEmpty, fmt.Sprintf("Value for '%s' must not be null or empty", field))
}

// ValueIsRequired reports an absent required argument.
func ValueIsRequired(field string) *Error {
	return New(CodeValueRequired, fmt.Sprintf("Value is required for '%s'", field))
}

func IllegalState(message string) *Error {
	return New(CodeIllegalState, "Illegal state: "+message)
}

// StorageError wraps a transaction or transport fault from the backing
// store. The underlying cause's message is preserved verbatim.
func StorageError(message string) *Error {
	return New(CodeStorage, fmt.Sprintf("Storage operation failed: %s", message))
}

func DeserializationError(message string) *Error {
	return New(CodeDeserialization, "Deserialization error: "+message)
}

func SerializationError(message string) *Error {
	return New(CodeSerialization, "Serialization error: "+message)
}

// Validation aggregates field-level request-validation violations.
func Validation(fields ...FieldError) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}
