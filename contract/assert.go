package contract

import (
	"reflect"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// AssertErrorType asserts that E satisfies the constructor contract.
// Each violation is reported to t as a separate failure; the test keeps
// running. Returns true when the contract holds.
func AssertErrorType[E error](t assert.TestingT, ctors Constructors, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Assert(t, reflect.TypeFor[E](), ctors, msgAndArgs...)
}

// Assert is the reflect.Type form of AssertErrorType.
func Assert(t assert.TestingT, typ reflect.Type, ctors Constructors, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	err := Verify(typ, ctors)
	if err == nil {
		return true
	}

	violations := Violations(err)
	if len(violations) == 0 {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}
	for _, v := range violations {
		assert.Fail(t, v.Error(), msgAndArgs...)
	}
	return false
}
