package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error for the boundary translation
type Kind int

const (
	// KindInternal for unexpected failures
	KindInternal Kind = 0

	// KindValidation for malformed or missing input
	KindValidation Kind = 1

	// KindDomain for business rule violations
	KindDomain Kind = 2

	// KindNotFound for unknown entities
	KindNotFound Kind = 3

	// KindDuplicate for unique constraint violations
	KindDuplicate Kind = 4
)

// Error ...
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Validation ...
func Validation(field string, message string) *Error {
	return &Error{Kind: KindValidation, Code: "validation", Field: field, Message: message}
}

// Domain ...
func Domain(code string, message string) *Error {
	return &Error{Kind: KindDomain, Code: code, Message: message}
}

// NotFound ...
func NotFound(code string, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Duplicate ...
func Duplicate(field string, message string) *Error {
	return &Error{Kind: KindDuplicate, Code: "duplicate", Field: field, Message: message}
}

// FieldErrors groups validation errors reported together
type FieldErrors []*Error

func (f FieldErrors) Error() string {
	msgs := make([]string, 0, len(f))
	for _, e := range f {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// KindOf ...
func KindOf(err error) Kind {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return KindValidation
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Payload is the structured error body returned to callers
type Payload struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToPayload converts any error into a status code and a structured payload.
// Unknown errors never leak their message.
func ToPayload(err error) (int, Payload) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, e := range fieldErrs {
			fields[e.Field] = e.Message
		}
		return http.StatusBadRequest, Payload{
			Error:  "validation failed",
			Code:   "validation",
			Fields: fields,
		}
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, Payload{Error: "internal error", Code: "internal"}
	}

	payload := Payload{Error: appErr.Message, Code: appErr.Code}
	if appErr.Field != "" {
		payload.Fields = map[string]string{appErr.Field: appErr.Message}
	}

	switch appErr.Kind {
	case KindNotFound:
		return http.StatusNotFound, payload
	case KindValidation, KindDomain, KindDuplicate:
		return http.StatusBadRequest, payload
	default:
		return http.StatusInternalServerError, Payload{Error: "internal error", Code: "internal"}
	}
}
