// Package errors provides a structured error type (BuildError) for
// kind-based classification of build failures in the CLI and watch loop.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a build error for user-facing reporting.
type Kind string

const (
	// Source parsing errors
	KindMalformedFrontMatter Kind = "malformed_front_matter"
	KindInvalidDate          Kind = "invalid_date"

	// Cross-document invariant violations
	KindDuplicateSlug Kind = "duplicate_slug"

	// Template composition errors
	KindMissingTemplate Kind = "missing_template"
	KindMissingLayout   Kind = "missing_layout"

	// Filesystem errors
	KindIO Kind = "io"

	// Everything else
	KindInternal Kind = "internal"
)

// BuildError is a structured error carrying the error kind and the offending
// source or template path. All BuildErrors are fatal for the invocation that
// produced them.
type BuildError struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap supports errors.Is and errors.As against the cause chain.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithPath attaches the offending path and returns the error.
func (e *BuildError) WithPath(path string) *BuildError {
	e.Path = path
	return e
}

// New creates a BuildError of the given kind.
func New(kind Kind, format string, args ...any) *BuildError {
	return &BuildError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a BuildError of the given kind wrapping an existing error.
func Wrap(err error, kind Kind, format string, args ...any) *BuildError {
	return &BuildError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// IsKind checks whether an error, anywhere in its chain, is a BuildError of
// a specific kind.
func IsKind(err error, kind Kind) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// GetKind extracts the kind from an error chain, or KindInternal when no
// BuildError is present.
func GetKind(err error) Kind {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
