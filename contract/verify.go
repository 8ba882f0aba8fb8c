package contract

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Constructors holds the four canonical constructors of an error type.
// Each field must hold a func with the signature its Role requires; a nil
// field or nil func is reported as a missing constructor.
type Constructors struct {
	// New is the func() E constructor.
	New interface{}

	// NewWithMessage is the func(string) E constructor.
	NewWithMessage interface{}

	// NewWithCause is the func(error) E constructor.
	NewWithCause interface{}

	// NewWithMessageAndCause is the func(string, error) E constructor.
	NewWithMessageAndCause interface{}
}

// For returns the constructor registered for role.
func (c Constructors) For(role Role) interface{} {
	switch role {
	case RoleNoArgs:
		return c.New
	case RoleMessage:
		return c.NewWithMessage
	case RoleCause:
		return c.NewWithCause
	case RoleMessageAndCause:
		return c.NewWithMessageAndCause
	default:
		return nil
	}
}

// VerifyType verifies the constructor contract of E.
// See Verify.
func VerifyType[E error](ctors Constructors) error {
	return Verify(reflect.TypeFor[E](), ctors)
}

// Verify checks every constructor role of typ and returns nil when the type
// satisfies the contract.
//
// Otherwise it returns one *Violation per failing role joined with
// errors.Join; use Violations to take them apart. A nil or interface typ, or a
// typ that does not implement error, is rejected with a CodeInvalidInput
// PlatformError before any constructor runs.
func Verify(typ reflect.Type, ctors Constructors) error {
	if typ == nil {
		return errors.New(errors.CodeInvalidInput, "error type is nil")
	}
	if typ.Kind() == reflect.Interface {
		return errors.Newf(errors.CodeInvalidInput, "%s is an interface, want a concrete error type", typ)
	}
	if !typ.Implements(errorType) {
		return errors.Newf(errors.CodeInvalidInput, "type %s does not implement error", typ)
	}

	var violations []error
	for _, role := range Roles() {
		if err := verifyRole(typ, role, ctors.For(role)); err != nil {
			violations = append(violations, err)
		}
	}

	return stderrors.Join(violations...)
}

// Resolve checks that ctor is a callable func with the exact parameter list
// role requires and a single result implementing error.
func Resolve(typ reflect.Type, role Role, ctor interface{}) (reflect.Value, error) {
	want, ok := role.params()
	if !ok {
		return reflect.Value{}, violation(typ, role, KindMissingConstructor, "unknown constructor role")
	}
	if ctor == nil {
		return reflect.Value{}, violation(typ, role, KindMissingConstructor, "no %s constructor declared", role.signature())
	}

	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func {
		return reflect.Value{}, violation(typ, role, KindMissingConstructor, "got %s, want %s", fn.Type(), role.signature())
	}
	if fn.IsNil() {
		return reflect.Value{}, violation(typ, role, KindMissingConstructor, "%s is a nil func", fn.Type())
	}

	ft := fn.Type()
	if !matchesSignature(ft, want) {
		return reflect.Value{}, violation(typ, role, KindMissingConstructor, "got %s, want %s", ft, role.signature())
	}

	return fn, nil
}

func matchesSignature(ft reflect.Type, params []reflect.Type) bool {
	if ft.IsVariadic() || ft.NumIn() != len(params) {
		return false
	}
	for i, p := range params {
		if ft.In(i) != p {
			return false
		}
	}
	return ft.NumOut() == 1 && ft.Out(0).Implements(errorType)
}

func verifyRole(typ reflect.Type, role Role, ctor interface{}) (err error) {
	fn, err := Resolve(typ, role, ctor)
	if err != nil {
		return err
	}

	// Constructors and the Message/Unwrap methods are user code.
	defer func() {
		if r := recover(); r != nil {
			err = violation(typ, role, KindWrongState, "panicked: %v", r)
		}
	}()

	args, cause := probe(role)
	got := construct(fn, args)
	if got == nil || reflect.TypeOf(got) != typ {
		return violation(typ, role, KindWrongType, "got %s, want %s", typeName(got), typ)
	}

	if v := checkState(typ, role, got, cause); v != nil {
		return v
	}
	return nil
}

// construct calls fn and normalizes nil interfaces and nil pointers, including
// a nil pointer held by an interface result, to nil.
func construct(fn reflect.Value, args []reflect.Value) error {
	out := fn.Call(args)[0]
	if out.Kind() == reflect.Interface {
		if out.IsNil() {
			return nil
		}
		out = out.Elem()
	}
	switch out.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if out.IsNil() {
			return nil
		}
	}
	return out.Interface().(error)
}

func checkState(typ reflect.Type, role Role, got error, cause *IllegalArgumentError) *Violation {
	msg := messageOf(got)

	switch role {
	case RoleNoArgs:
		if msg != "" {
			return violation(typ, role, KindWrongState, "message is %q, want empty", msg)
		}

	case RoleMessage:
		if msg != ProbeMessage {
			return violation(typ, role, KindWrongState, "message is %q, want %q", msg, ProbeMessage)
		}

	case RoleCause:
		if !strings.Contains(msg, causeTypeName) {
			return violation(typ, role, KindWrongState, "message %q does not mention %s", msg, causeTypeName)
		}
		if recorded, ok := causeOf(got).(*IllegalArgumentError); !ok || recorded != cause {
			return violation(typ, role, KindWrongState, "cause is %s, want the supplied *%s", describe(causeOf(got)), causeTypeName)
		}

	case RoleMessageAndCause:
		if msg != ProbeMessage {
			return violation(typ, role, KindWrongState, "message is %q, want %q", msg, ProbeMessage)
		}
		recorded, ok := causeOf(got).(*IllegalArgumentError)
		if !ok {
			return violation(typ, role, KindWrongState, "cause is %s, want *%s", describe(causeOf(got)), causeTypeName)
		}
		if recorded.Message() != ProbeCauseMessage {
			return violation(typ, role, KindWrongState, "cause message is %q, want %q", recorded.Message(), ProbeCauseMessage)
		}
	}

	return nil
}

func typeName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func describe(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%v)", typeName(err), err)
}
