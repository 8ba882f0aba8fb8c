package contract

import "reflect"

const (
	// ProbeMessage is the message passed to the Message and MessageAndCause constructors.
	ProbeMessage = "abc"

	// ProbeCauseMessage is the message carried by the cause passed to the
	// MessageAndCause constructor.
	ProbeCauseMessage = "def"
)

var causeTypeName = reflect.TypeFor[IllegalArgumentError]().Name()

// IllegalArgumentError is the cause handed to the Cause and MessageAndCause
// constructors during verification.
//
// Its Error() output always starts with the type name so that an error
// deriving its message from the cause ends up mentioning it.
type IllegalArgumentError struct {
	message string
}

// NewIllegalArgumentError returns a probe cause carrying message.
func NewIllegalArgumentError(message string) *IllegalArgumentError {
	return &IllegalArgumentError{message: message}
}

// Error returns "IllegalArgumentError" or "IllegalArgumentError: <message>".
func (e *IllegalArgumentError) Error() string {
	if e.message == "" {
		return causeTypeName
	}
	return causeTypeName + ": " + e.message
}

// Message returns the raw message without the type name.
func (e *IllegalArgumentError) Message() string {
	return e.message
}

// probe returns the fixed arguments for role and the cause among them, if any.
func probe(role Role) ([]reflect.Value, *IllegalArgumentError) {
	switch role {
	case RoleMessage:
		return []reflect.Value{reflect.ValueOf(ProbeMessage)}, nil
	case RoleCause:
		cause := NewIllegalArgumentError("")
		return []reflect.Value{errorValue(cause)}, cause
	case RoleMessageAndCause:
		cause := NewIllegalArgumentError(ProbeCauseMessage)
		return []reflect.Value{reflect.ValueOf(ProbeMessage), errorValue(cause)}, cause
	default:
		return nil, nil
	}
}

// errorValue boxes err as a reflect.Value of static type error.
func errorValue(err error) reflect.Value {
	v := reflect.New(errorType).Elem()
	v.Set(reflect.ValueOf(err))
	return v
}

type messager interface {
	Message() string
}

// messageOf returns Message() when err provides it and Error() otherwise.
func messageOf(err error) string {
	if m, ok := err.(messager); ok {
		return m.Message()
	}
	return err.Error()
}

// causeOf returns the cause err records directly, without walking the chain.
func causeOf(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
