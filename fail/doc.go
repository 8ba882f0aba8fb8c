// Package fail asserts that a unit of work fails, optionally with an error of
// a specific type.
//
// A computation fails when it returns a non-nil error or panics. A panic whose
// value is an error is treated as that error; any other value is wrapped in a
// *PanicError. The computation runs exactly once, synchronously, on the
// calling goroutine.
//
// Two shapes are supported:
//
//   - Assignment: func() (V, error), a computation producing a value.
//   - Execution: func() error, a computation run for its side effects.
//
// The expected type defaults to error, so any failure is accepted. Narrow it
// with WithType; the failure matches when its own dynamic type is assignable
// to the expected type. Interface types therefore match every implementation.
// Errors it wraps are not consulted.
//
//	func TestParsePort(t *testing.T) {
//	    fail.Assignment(t, func() (int, error) {
//	        return ParsePort("http")
//	    }, fail.WithType[*strconv.NumError](), fail.WithMessage("port must be numeric"))
//	}
//
// When the computation does not fail, or fails with an error of another
// type, the assertion reports one of these diagnostics and stops the test:
//
//	<message>; Assignment did not throw any exception
//	<message>; Execution failed on unexpected Throwable, expected (<want>), but got (<got>).
//
// Check is the pure form; it returns the *AssertionError instead of reporting
// it.
package fail
