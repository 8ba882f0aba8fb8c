package fail

import (
	"fmt"
	"reflect"

	"github.com/jmgilman/go/errors"
)

// Outcome is the terminal state of a single check.
type Outcome string

const (
	// OutcomeTypeOK means the computation failed with an expected error.
	OutcomeTypeOK Outcome = "TYPE_OK"

	// OutcomeTypeMismatch means the computation failed with an error of
	// another type.
	OutcomeTypeMismatch Outcome = "TYPE_MISMATCH"

	// OutcomeNotRaised means the computation completed without failing.
	OutcomeNotRaised Outcome = "NOT_RAISED"
)

// AssertionError reports that a computation did not fail as expected.
type AssertionError struct {
	// Shape is the shape of the computation.
	Shape Shape

	// Message is the explanation given with WithMessage.
	Message string

	// Expected is the expected failure type.
	Expected reflect.Type

	// Actual is the failure raised by the computation, or nil if it
	// completed.
	Actual error
}

// Error returns the diagnostic.
func (e *AssertionError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("%s; %s did not throw any exception", e.Message, e.Shape)
	}
	return fmt.Sprintf("%s; %s failed on unexpected Throwable, expected (%s), but got (%s).",
		e.Message, e.Shape, e.Expected, reflect.TypeOf(e.Actual))
}

// Outcome returns OutcomeNotRaised or OutcomeTypeMismatch.
func (e *AssertionError) Outcome() Outcome {
	if e.Actual == nil {
		return OutcomeNotRaised
	}
	return OutcomeTypeMismatch
}

// Unwrap returns the unexpected failure, if any.
func (e *AssertionError) Unwrap() error {
	return e.Actual
}

type emptier interface {
	empty() bool
}

// Check runs c once and returns nil when it fails with an error of the
// expected type. Otherwise it returns an *AssertionError describing what
// happened instead.
//
// A nil computation is rejected with a CodeInvalidInput PlatformError without
// running anything.
func Check(c Computation, opts ...Option) error {
	if c == nil {
		return errors.New(errors.CodeInvalidInput, "computation is nil")
	}
	if e, ok := c.(emptier); ok && e.empty() {
		return errors.Newf(errors.CodeInvalidInput, "%s func is nil", c.Shape())
	}

	o := newOptions(opts)
	raised := invoke(c)
	if raised == nil {
		return &AssertionError{Shape: c.Shape(), Message: o.message, Expected: o.expected}
	}
	if matches(raised, o.expected) {
		return nil
	}
	return &AssertionError{Shape: c.Shape(), Message: o.message, Expected: o.expected, Actual: raised}
}

// matches reports whether the dynamic type of err is assignable to want.
// Errors wrapped by err are not consulted.
func matches(err error, want reflect.Type) bool {
	return err != nil && reflect.TypeOf(err).AssignableTo(want)
}
