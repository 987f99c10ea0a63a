package model

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable reports that a host could not enumerate a type's
// members.
var ErrModelUnavailable = errors.New("type model unavailable")

// TypeRef identifies a type within a host model, e.g. "member-template/examples/beans.Person".
type TypeRef string

// String returns the reference text.
func (r TypeRef) String() string {
	return string(r)
}

// Field is a declared field of a type.
type Field struct {
	Name string // Identifier as declared
	Type string // Declared type signature ("Z", "QString;", ...) or source text
	// Display is readable type text rendered by the host. When set it is
	// used as is instead of decoding Type.
	Display string
	// Boolean is the host's own boolean classification of the field type.
	Boolean BoolKind
}

// BoolKind tells whether a host classified a field type as boolean.
type BoolKind uint8

const (
	// BoolFromType leaves the decision to the Type signature.
	BoolFromType BoolKind = iota
	// BoolYes marks a boolean field.
	BoolYes
	// BoolNo marks a field that is not boolean, whatever its Type text.
	BoolNo
)

// BoolKindOf returns BoolYes or BoolNo for a host that knows the answer.
func BoolKindOf(boolean bool) BoolKind {
	if boolean {
		return BoolYes
	}

	return BoolNo
}

// Method is a declared method of a type.
type Method struct {
	Name       string
	ParamCount int
}

// TypeModel enumerates the declared members of a type. Fields must be
// returned in declaration order.
type TypeModel interface {
	Fields(ref TypeRef) ([]Field, error)
	Methods(ref TypeRef) ([]Method, error)
}

// Op names the enumeration that failed.
type Op string

const (
	OpFields  Op = "fields"
	OpMethods Op = "methods"
)

// UnavailableError wraps a host failure while enumerating a type's members.
// It matches ErrModelUnavailable under errors.Is.
type UnavailableError struct {
	Type TypeRef
	Op   Op
	Err  error
}

// Unavailable wraps err as an UnavailableError unless it already is one.
func Unavailable(ref TypeRef, op Op, err error) error {
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		return err
	}

	return &UnavailableError{Type: ref, Op: op, Err: err}
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("listing %s of %s: %v", e.Op, e.Type, ErrModelUnavailable)
	}

	return fmt.Sprintf("listing %s of %s: %v", e.Op, e.Type, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is makes every UnavailableError match ErrModelUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrModelUnavailable
}
