// Package hsmerr defines the error taxonomy shared across the hsm module:
// schema construction errors (synchronous, user-fixable) versus the two
// operational, non-error conditions a driver surfaces at runtime.
package hsmerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap these with %w so callers can errors.Is/As them,
// mirroring the nfa package's ErrInvalidState/ErrInvalidPattern idiom.
var (
	// ErrUnknownType indicates a schema named a `type` this module does not support.
	ErrUnknownType = errors.New("hsm: unknown schema type")

	// ErrMissingDef indicates a `$ref` pointed at a `$defs` entry that does not exist.
	ErrMissingDef = errors.New("hsm: missing schema definition")

	// ErrUnsupportedKeyword indicates a schema used a keyword this module does not compile.
	ErrUnsupportedKeyword = errors.New("hsm: unsupported schema keyword")

	// ErrEmptyEnum indicates an `enum` keyword had no members.
	ErrEmptyEnum = errors.New("hsm: empty enum")

	// ErrEmptyPhrase indicates a Phrase acceptor was constructed with empty text.
	ErrEmptyPhrase = errors.New("hsm: empty phrase text")

	// ErrInvalidOffset indicates a walker was asked to start at an offset outside its acceptor's states.
	ErrInvalidOffset = errors.New("hsm: invalid walker starting offset")

	// ErrRequiredPropertyUndeclared indicates a `required` name has no matching `properties` entry.
	ErrRequiredPropertyUndeclared = errors.New("hsm: required property not declared")

	// ErrInvalidConfig indicates a driver.Config failed Validate.
	ErrInvalidConfig = errors.New("hsm: invalid driver configuration")

	// ErrNotAccepted is returned by ConsumeRaw when ground-truth text the
	// caller expected to be valid was instead rejected by the walker
	// population (an operational condition, not a schema error, but
	// still worth a named sentinel since callers typically treat it as
	// a hard failure rather than a policy decision).
	ErrNotAccepted = errors.New("hsm: input rejected by acceptor")
)

// SchemaError wraps a schema construction failure with the keyword and a
// human-readable message, the way nfa.CompileError wraps a pattern failure.
type SchemaError struct {
	Keyword string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("hsm: schema error at %q: %s", e.Keyword, e.Message)
	}
	return fmt.Sprintf("hsm: schema error: %s", e.Message)
}

// Unwrap returns the underlying sentinel so errors.Is keeps working.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError constructs a *SchemaError wrapping one of the sentinels above.
func NewSchemaError(keyword, message string, sentinel error) *SchemaError {
	return &SchemaError{Keyword: keyword, Message: message, Err: sentinel}
}
