package fail

import "reflect"

// AnyError is the default expected type; every failure is assignable to it.
var AnyError = reflect.TypeFor[error]()

// Option configures Check, Assignment and Execution.
type Option func(*options)

type options struct {
	message  string
	expected reflect.Type
}

func newOptions(opts []Option) options {
	o := options{expected: AnyError}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMessage sets the explanation prefixed to every diagnostic. It is never
// compared with the message of the failure.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithType expects the failure to be a T.
func WithType[T any]() Option {
	return WithTypeOf(reflect.TypeFor[T]())
}

// WithTypeOf expects the failure to be assignable to typ. A nil typ keeps the
// current expectation.
func WithTypeOf(typ reflect.Type) Option {
	return func(o *options) {
		if typ != nil {
			o.expected = typ
		}
	}
}
