package typelist

import (
	"go/token"
	"reflect"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Interface references a named interface type by package path and name.
// An empty Path refers to a predeclared interface such as error.
type Interface struct {
	Path string
	Name string
}

// String returns "path.Name", or just the name for predeclared interfaces.
func (i Interface) String() string {
	if i.Path == "" {
		return i.Name
	}
	return i.Path + "." + i.Name
}

// ParseInterface parses a reference such as "io.Reader",
// "gopkg.in/yaml.v3.Marshaler" or "error".
func ParseInterface(ref string) (Interface, error) {
	idx := strings.LastIndex(ref, ".")
	iface := Interface{Name: ref}
	if idx >= 0 {
		iface = Interface{Path: ref[:idx], Name: ref[idx+1:]}
		if iface.Path == "" {
			return Interface{}, errors.Newf(errors.CodeInvalidInput, "invalid interface reference %q: missing package path", ref)
		}
	}

	if !token.IsIdentifier(iface.Name) {
		return Interface{}, errors.Newf(errors.CodeInvalidInput, "invalid interface reference %q: %q is not an identifier", ref, iface.Name)
	}
	return iface, nil
}

// InterfaceOf returns the reference of a named interface type, e.g.
// InterfaceOf(reflect.TypeFor[fmt.Stringer]()).
func InterfaceOf(t reflect.Type) (Interface, error) {
	if t == nil || t.Kind() != reflect.Interface {
		return Interface{}, errors.Newf(errors.CodeInvalidInput, "%v is not an interface type", t)
	}
	if t.Name() == "" {
		return Interface{}, errors.Newf(errors.CodeInvalidInput, "%v is an unnamed interface type", t)
	}
	return Interface{Path: t.PkgPath(), Name: t.Name()}, nil
}
