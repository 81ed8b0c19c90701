package resname

import (
	"errors"
	"fmt"
)

// ErrMalformedReference matches every *MalformedReferenceError via errors.Is.
var ErrMalformedReference = errors.New("malformed resource reference")

// ErrTypeMismatch matches every *TypeMismatchError via errors.Is.
var ErrTypeMismatch = errors.New("resource type mismatch")

// MalformedReferenceError is returned when text cannot be parsed as a
// fully-qualified resource name.
type MalformedReferenceError struct {
	// Text is the input as given by the caller.
	Text string
	// Reason says what was wrong with it.
	Reason string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("%q: %s", e.Text, e.Reason)
}

// Is implements errors.Is support for ErrMalformedReference.
func (e *MalformedReferenceError) Is(target error) bool {
	return target == ErrMalformedReference
}

// TypeMismatchError is returned by Name.CheckType when a resource of one type
// is used where another was expected.
type TypeMismatchError struct {
	// Name is the fully-qualified name that was checked.
	Name string
	// Expected is the type the caller asked for.
	Expected string
	// Actual is the type of the name.
	Actual string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s to be a %s, is a %s", e.Name, e.Expected, e.Actual)
}

// Is implements errors.Is support for ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
