package domain

import (
	"errors"
	"strings"
)

var (
	ErrFormBusy      = errors.New("form submission already in progress")
	ErrFormSubmitted = errors.New("form was just submitted")
	ErrUnknownKind   = errors.New("unknown form kind")
)

// FieldError is a single user-facing validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned before any backend call when the entered data
// cannot be submitted.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message recorded for field, or "".
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// BackendError marks a failed call to the external backend.
type BackendError struct {
	Op  string // "upload" or "create"
	Err error
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *BackendError) Unwrap() error { return e.Err }
