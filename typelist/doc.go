// Package typelist lists the concrete named types of a set of Go packages that
// are missing a method or an interface.
//
// It is meant for repository hygiene checks, for example asserting that every
// type in a module declares a String method:
//
//	names, err := typelist.WithoutMethod(ctx, typelist.Config{}, "String", "./...")
//
// Packages are selected with the usual go tool patterns; a trailing "/..."
// selects every package under a path prefix. Interfaces, type aliases and
// function-local types are never listed. Names are qualified with their
// package path and sorted.
//
// "Declares a method" means the method is declared with the type (or a
// pointer to it) as receiver; methods promoted from embedded fields do not
// count. "Implements an interface" considers the full method set of *T, which
// includes promoted methods.
//
// The Print variants write a header line followed by one name per line to the
// supplied writer.
package typelist
