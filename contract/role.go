package contract

import "reflect"

// Role identifies one of the four canonical error constructors.
type Role string

const (
	// RoleNoArgs is the constructor taking no arguments.
	RoleNoArgs Role = "NoArgs"

	// RoleMessage is the constructor taking only a message.
	RoleMessage Role = "Message"

	// RoleCause is the constructor taking only a cause.
	RoleCause Role = "Cause"

	// RoleMessageAndCause is the constructor taking a message and a cause.
	RoleMessageAndCause Role = "MessageAndCause"
)

var (
	errorType  = reflect.TypeFor[error]()
	stringType = reflect.TypeFor[string]()
)

// Roles returns the four constructor roles in the order they are verified.
func Roles() []Role {
	return []Role{RoleNoArgs, RoleMessage, RoleCause, RoleMessageAndCause}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// params returns the exact parameter list a constructor for r must declare.
// The second result is false for unknown roles.
func (r Role) params() ([]reflect.Type, bool) {
	switch r {
	case RoleNoArgs:
		return nil, true
	case RoleMessage:
		return []reflect.Type{stringType}, true
	case RoleCause:
		return []reflect.Type{errorType}, true
	case RoleMessageAndCause:
		return []reflect.Type{stringType, errorType}, true
	default:
		return nil, false
	}
}

// signature renders the constructor shape for r, e.g. "func(string, error) E".
func (r Role) signature() string {
	switch r {
	case RoleNoArgs:
		return "func() E"
	case RoleMessage:
		return "func(string) E"
	case RoleCause:
		return "func(error) E"
	case RoleMessageAndCause:
		return "func(string, error) E"
	default:
		return "unknown"
	}
}
