package model

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors. Every error returned by Builder.Build wraps exactly one of these
// in a *ValidationError, so callers can tell them apart with errors.Is.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMissingRequiredCollection is a refinement of ErrMissingRequiredField:
	// errors.Is matches both for an empty required list.
	ErrMissingRequiredCollection = errors.New("missing required collection")
	ErrInvalidChoiceType         = errors.New("invalid type for choice field")
	ErrEmptyElement              = errors.New("element has no value and no children")
	ErrInvalidField              = errors.New("invalid field")
	ErrInvalidValue              = errors.New("invalid primitive value")
	ErrAbstractType              = errors.New("abstract type cannot be instantiated")
	ErrTooManyElements           = errors.New("too many elements")
)

// ValidationError reports why a node could not be built.
type ValidationError struct {
	Err error
	// Type is the name of the type being built.
	Type  string
	Field string
	// Actual is the offending type name for type errors.
	Actual  string
	Allowed []string
	Detail  string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " '%s'", e.Field)
	}
	if e.Actual != "" {
		fmt.Fprintf(&b, ": got %s", e.Actual)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, ", must be one of: %s", strings.Join(e.Allowed, ", "))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingRequiredField && e.Err == ErrMissingRequiredCollection
}
