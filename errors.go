package keypath

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidPath is returned when the path has no segments.
var ErrInvalidPath = errors.New("invalid key path")

// ErrMissing is returned when a key is absent or an intermediate segment is not a map.
var ErrMissing = errors.New("missing")

// ErrIsNil is returned when the final key is present but its value is null.
var ErrIsNil = errors.New("is nil")

// ErrTypeMismatch is returned when the final value, or the root, cannot be narrowed to the requested type.
var ErrTypeMismatch = errors.New("type mismatch")

// DecodeError describes why a path could not be decoded.
// Err is always one of ErrInvalidPath, ErrMissing, ErrIsNil or ErrTypeMismatch.
type DecodeError struct {
	Err  error
	Path Path

	// Enclosing is the container being inspected when decoding stopped.
	// It is nil for ErrInvalidPath and ErrIsNil.
	Enclosing any

	// Expected and Actual are only set for ErrTypeMismatch.
	Expected reflect.Type
	Actual   reflect.Type

	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("keypath %q: %v: %s", e.Path.String(), e.Err, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func invalidPathError(path Path) *DecodeError {
	return &DecodeError{
		Err:    ErrInvalidPath,
		Path:   path,
		Reason: "key path has no segments",
	}
}

func missingError(path Path, missing Path, enclosing map[string]any) *DecodeError {
	return &DecodeError{
		Err:       ErrMissing,
		Path:      path,
		Enclosing: enclosing,
		Reason:    missing.String() + " is missing",
	}
}

func isNilError(path Path) *DecodeError {
	return &DecodeError{
		Err:    ErrIsNil,
		Path:   path,
		Reason: path.String() + " is null",
	}
}

func typeMismatchError(path Path, expected reflect.Type, value any, enclosing any, reason string) *DecodeError {
	return &DecodeError{
		Err:       ErrTypeMismatch,
		Path:      path,
		Enclosing: enclosing,
		Expected:  expected,
		Actual:    reflect.TypeOf(value),
		Reason:    reason,
	}
}

// typeName renders t, including the nil type of an untyped nil value.
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
