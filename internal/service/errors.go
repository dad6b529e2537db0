package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidStatus is returned for a status outside unread/read/replied.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrSectionNotFound is returned for an unknown portfolio section name.
	ErrSectionNotFound = errors.New("section not found")
)

// FieldError describes one violated constraint on an input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned before anything is persisted when input
// violates one or more field constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
