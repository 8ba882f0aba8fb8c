package fail

import (
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// Assignment asserts that fn fails with an error of the expected type. On
// violation it reports the diagnostic to t and calls t.FailNow.
//
// The zero V is always returned; a value produced alongside a failure is
// discarded.
func Assignment[V any](t require.TestingT, fn func() (V, error), opts ...Option) V {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	report(t, Check(Assign(fn), opts...))

	var zero V
	return zero
}

// Execution asserts that fn fails with an error of the expected type. On
// violation it reports the diagnostic to t and calls t.FailNow.
func Execution(t require.TestingT, fn func() error, opts ...Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	report(t, Check(Exec(fn), opts...))
}

func report(t require.TestingT, err error) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err != nil {
		require.Fail(t, err.Error())
	}
}
