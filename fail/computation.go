package fail

import "fmt"

// Shape names the kind of computation in diagnostics.
type Shape string

const (
	// ShapeAssignment is a computation producing a value.
	ShapeAssignment Shape = "Assignment"

	// ShapeExecution is a computation run for its side effects.
	ShapeExecution Shape = "Execution"
)

// Computation is a deferred unit of work observed by Check.
type Computation interface {
	// Shape returns the label used in diagnostics.
	Shape() Shape

	// Run performs the work and returns its failure, if any.
	Run() error
}

// Assign wraps a value-producing func as a Computation. The produced value is
// discarded.
func Assign[V any](fn func() (V, error)) Computation {
	return assignment[V]{fn: fn}
}

// Exec wraps a func run for its side effects as a Computation.
func Exec(fn func() error) Computation {
	return execution{fn: fn}
}

type assignment[V any] struct {
	fn func() (V, error)
}

func (a assignment[V]) Shape() Shape { return ShapeAssignment }

func (a assignment[V]) Run() error {
	_, err := a.fn()
	return err
}

func (a assignment[V]) empty() bool { return a.fn == nil }

type execution struct {
	fn func() error
}

func (e execution) Shape() Shape { return ShapeExecution }

func (e execution) Run() error { return e.fn() }

func (e execution) empty() bool { return e.fn == nil }

// PanicError records a panic whose value is not an error.
type PanicError struct {
	Value interface{}
}

// Error returns "panic: <value>".
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// invoke runs c once and converts a panic into the failure it raised.
func invoke(c Computation) (raised error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			raised = err
			return
		}
		raised = &PanicError{Value: r}
	}()

	return c.Run()
}
