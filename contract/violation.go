package contract

import (
	"fmt"
	"reflect"
)

// ViolationKind categorizes why an error type failed a constructor role.
type ViolationKind string

const (
	// KindMissingConstructor means the constructor was not provided, is a nil
	// func, or does not have the exact signature the role requires.
	KindMissingConstructor ViolationKind = "missing or inaccessible constructor"

	// KindWrongType means the constructor returned a value whose dynamic type
	// is not exactly the type under test.
	KindWrongType ViolationKind = "wrong error type"

	// KindWrongState means the constructed error does not carry the expected
	// message or cause, or the constructor panicked.
	KindWrongState ViolationKind = "wrong error state"
)

// Violation describes a single constructor role that broke the contract.
type Violation struct {
	// Type is the error type under test.
	Type reflect.Type

	// Role is the constructor role that failed.
	Role Role

	// Kind categorizes the failure.
	Kind ViolationKind

	// Detail is a human-readable description of what was observed.
	Detail string
}

// Error returns the string representation of the violation.
// Format: "<kind>: <role> constructor of <type>: <detail>".
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s constructor of %s: %s", v.Kind, v.Role, v.Type, v.Detail)
}

func violation(typ reflect.Type, role Role, kind ViolationKind, format string, args ...interface{}) *Violation {
	return &Violation{
		Type:   typ,
		Role:   role,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Violations returns the violations carried by an error returned from Verify.
// Errors that are not violations are skipped.
func Violations(err error) []*Violation {
	if err == nil {
		return nil
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	var out []*Violation
	for _, e := range errs {
		if v, ok := e.(*Violation); ok {
			out = append(out, v)
		}
	}
	return out
}
