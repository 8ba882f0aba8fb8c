package fail_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testkit/fail"
)

// recordingT captures what the harness reports instead of failing the test.
type recordingT struct {
	failures  []string
	failedNow bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failedNow = true
}

func openMissing(t *testing.T) func() error {
	path := filepath.Join(t.TempDir(), "missing.txt")
	return func() error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		return f.Close()
	}
}

func atoi() (int, error) {
	return strconv.Atoi("forty-two")
}

func derefNil() error {
	var p *net.DNSError
	return fmt.Errorf("%s", p.Name)
}

func TestCheck_ExpectedFailure(t *testing.T) {
	tests := []struct {
		name string
		c    fail.Computation
		opts []fail.Option
	}{
		{
			name: "any error by default",
			c:    fail.Exec(openMissing(t)),
		},
		{
			name: "exact type",
			c:    fail.Exec(openMissing(t)),
			opts: []fail.Option{fail.WithType[*fs.PathError]()},
		},
		{
			name: "interface type",
			c: fail.Exec(func() error {
				return &net.DNSError{Err: "timeout", Name: "example.com", IsTimeout: true}
			}),
			opts: []fail.Option{fail.WithType[net.Error]()},
		},
		{
			name: "assignment",
			c:    fail.Assign(atoi),
			opts: []fail.Option{fail.WithType[*strconv.NumError](), fail.WithMessage("xyz")},
		},
		{
			name: "runtime panic",
			c:    fail.Exec(derefNil),
			opts: []fail.Option{fail.WithType[runtime.Error]()},
		},
		{
			name: "panic with error value",
			c: fail.Exec(func() error {
				panic(openMissing(t)())
			}),
			opts: []fail.Option{fail.WithType[*fs.PathError]()},
		},
		{
			name: "panic with other value",
			c: fail.Exec(func() error {
				panic("boom")
			}),
			opts: []fail.Option{fail.WithType[*fail.PanicError]()},
		},
		{
			name: "platform error",
			c: fail.Exec(func() error {
				return errors.New(errors.CodeNotFound, "user not found")
			}),
			opts: []fail.Option{fail.WithType[errors.PlatformError]()},
		},
		{
			name: "nil type keeps default",
			c:    fail.Exec(openMissing(t)),
			opts: []fail.Option{fail.WithTypeOf(nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, fail.Check(tt.c, tt.opts...))
		})
	}
}

func TestCheck_NotRaised(t *testing.T) {
	tests := []struct {
		name string
		c    fail.Computation
		opts []fail.Option
		want string
	}{
		{
			name: "assignment",
			c:    fail.Assign(func() (int, error) { return 42, nil }),
			want: "; Assignment did not throw any exception",
		},
		{
			name: "execution",
			c:    fail.Exec(func() error { return nil }),
			want: "; Execution did not throw any exception",
		},
		{
			name: "specific type expected",
			c:    fail.Exec(func() error { return nil }),
			opts: []fail.Option{fail.WithType[*fs.PathError]()},
			want: "; Execution did not throw any exception",
		},
		{
			name: "custom message",
			c:    fail.Assign(func() (string, error) { return "ok", nil }),
			opts: []fail.Option{fail.WithMessage("xyz")},
			want: "xyz; Assignment did not throw any exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fail.Check(tt.c, tt.opts...)

			var ae *fail.AssertionError
			require.ErrorAs(t, err, &ae)
			require.Equal(t, tt.want, ae.Error())
			require.Equal(t, fail.OutcomeNotRaised, ae.Outcome())
			require.Nil(t, ae.Unwrap())
		})
	}
}

func TestCheck_TypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		c    fail.Computation
		opts []fail.Option
		want string
	}{
		{
			name: "execution",
			c:    fail.Exec(func() error { _, err := atoi(); return err }),
			opts: []fail.Option{fail.WithType[*fs.PathError]()},
			want: "; Execution failed on unexpected Throwable, expected (*fs.PathError), but got (*strconv.NumError).",
		},
		{
			name: "assignment with message",
			c:    fail.Assign(atoi),
			opts: []fail.Option{fail.WithMessage("xyz"), fail.WithType[*fs.PathError]()},
			want: "xyz; Assignment failed on unexpected Throwable, expected (*fs.PathError), but got (*strconv.NumError).",
		},
		{
			name: "interface not implemented",
			c:    fail.Exec(openMissing(t)),
			opts: []fail.Option{fail.WithType[net.Error]()},
			want: "; Execution failed on unexpected Throwable, expected (net.Error), but got (*fs.PathError).",
		},
		{
			name: "type only in unwrap chain",
			c: fail.Exec(func() error {
				return fmt.Errorf("load config: %w", openMissing(t)())
			}),
			opts: []fail.Option{fail.WithType[*fs.PathError]()},
			want: "; Execution failed on unexpected Throwable, expected (*fs.PathError), but got (*fmt.wrapError).",
		},
		{
			name: "type only in joined errors",
			c: fail.Assign(func() (int, error) {
				_, err := atoi()
				return 0, stderrors.Join(stderrors.New("first"), err)
			}),
			opts: []fail.Option{fail.WithType[*strconv.NumError]()},
			want: "; Assignment failed on unexpected Throwable, expected (*strconv.NumError), but got (*errors.joinError).",
		},
		{
			name: "non-error panic",
			c:    fail.Exec(func() error { panic(42) }),
			opts: []fail.Option{fail.WithType[runtime.Error]()},
			want: "; Execution failed on unexpected Throwable, expected (runtime.Error), but got (*fail.PanicError).",
		},
		{
			name: "later option wins",
			c:    fail.Exec(openMissing(t)),
			opts: []fail.Option{fail.WithType[*fs.PathError](), fail.WithType[*strconv.NumError]()},
			want: "; Execution failed on unexpected Throwable, expected (*strconv.NumError), but got (*fs.PathError).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fail.Check(tt.c, tt.opts...)

			var ae *fail.AssertionError
			require.ErrorAs(t, err, &ae)
			require.Equal(t, tt.want, ae.Error())
			require.Equal(t, fail.OutcomeTypeMismatch, ae.Outcome())
			require.NotNil(t, ae.Unwrap())
		})
	}
}

func TestCheck_NilPointerPanicAgainstOtherType(t *testing.T) {
	err := fail.Check(fail.Exec(derefNil), fail.WithType[*strconv.NumError]())

	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected Throwable")
	require.Contains(t, err.Error(), "Execution")
	require.Contains(t, err.Error(), "expected (*strconv.NumError)")

	var rtErr runtime.Error
	require.ErrorAs(t, err, &rtErr)
}

func TestCheck_RunsOnce(t *testing.T) {
	calls := 0
	err := fail.Check(fail.Exec(func() error {
		calls++
		return stderrors.New("failed")
	}))

	require.NoError(t, err)
	require.Equal(t, 1, calls)

	calls = 0
	err = fail.Check(fail.Assign(func() (int, error) {
		calls++
		return calls, nil
	}))

	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestCheck_Idempotent(t *testing.T) {
	c := fail.Assign(atoi)
	opts := []fail.Option{fail.WithMessage("xyz"), fail.WithType[*fs.PathError]()}

	first := fail.Check(c, opts...)
	second := fail.Check(c, opts...)
	require.Equal(t, first.Error(), second.Error())

	require.NoError(t, fail.Check(c))
	require.NoError(t, fail.Check(c))
}

func TestCheck_NilComputation(t *testing.T) {
	tests := []struct {
		name string
		c    fail.Computation
	}{
		{"nil computation", nil},
		{"nil execution func", fail.Exec(nil)},
		{"nil assignment func", fail.Assign[int](nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fail.Check(tt.c)
			require.Error(t, err)
			require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestPanicError(t *testing.T) {
	err := fail.Check(fail.Exec(func() error { panic("boom") }), fail.WithType[*fs.PathError]())

	var pe *fail.PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "boom", pe.Value)
	require.Equal(t, "panic: boom", pe.Error())
}
