package typelist

import (
	"context"
	"fmt"
	"io"

	"github.com/jmgilman/go/errors"
)

// PrintWithoutMethod writes the result of WithoutMethod to w, preceded by the
// header "Types without method <method>():".
func PrintWithoutMethod(ctx context.Context, w io.Writer, cfg Config, method string, patterns ...string) error {
	names, err := WithoutMethod(ctx, cfg, method, patterns...)
	if err != nil {
		return err
	}
	return printList(w, fmt.Sprintf("Types without method %s():", method), names)
}

// PrintWithoutInterface writes the result of WithoutInterface to w, preceded
// by the header "Types without interface <iface>:".
func PrintWithoutInterface(ctx context.Context, w io.Writer, cfg Config, iface Interface, patterns ...string) error {
	names, err := WithoutInterface(ctx, cfg, iface, patterns...)
	if err != nil {
		return err
	}
	return printList(w, fmt.Sprintf("Types without interface %s:", iface), names)
}

func printList(w io.Writer, header string, names []string) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write type list")
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to write type list")
		}
	}
	return nil
}
