package types

import "fmt"

// The three failure classes surfaced by the binding layer. All are plain
// typed errors, distinguishable with errors.As; none is ever retried or
// suppressed.

// BoundaryError is a failure the host reported through its error record.
type BoundaryError struct {
	Type ErrorType // exception or validation
	Msg  string
}

var _ error = (*BoundaryError)(nil)

func (e *BoundaryError) Error() string {
	if e.Msg == "" {
		return e.Type.String()
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Msg)
}

// ConversionError reports that an Object's kind did not structurally match
// the requested typed shape.
type ConversionError struct {
	Expected ObjectKind
	Actual   ObjectKind
}

var _ error = (*ConversionError)(nil)

func (e *ConversionError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

// MissingFieldError reports that a required key was absent when decoding a
// struct-shaped Dictionary. Distinct from ConversionError: the field was
// not there at all, rather than present with the wrong kind.
type MissingFieldError struct {
	Field string
}

var _ error = (*MissingFieldError)(nil)

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// OutOfRangeError reports a typed value that cannot be represented as an
// Object, e.g. a uint64 exceeding the host's signed integer range.
type OutOfRangeError struct {
	TypeName string
	Value    string
}

var _ error = (*OutOfRangeError)(nil)

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value %s does not fit the host integer range", e.TypeName, e.Value)
}

// UnsupportedTypeError reports a Go type ToObject has no mapping for.
type UnsupportedTypeError struct {
	TypeName string
}

var _ error = (*UnsupportedTypeError)(nil)

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot convert %s to an object", e.TypeName)
}

// DomainError is a failure signaled by a sentinel return value (zero
// handle, -1 color) while the error record stayed clean. It is deliberately
// distinct from BoundaryError: the call itself succeeded.
type DomainError struct {
	Msg string
}

var _ error = (*DomainError)(nil)

func (e *DomainError) Error() string { return e.Msg }
