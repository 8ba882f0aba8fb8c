// Command typelist prints the types of Go packages that lack a method or do
// not implement an interface.
//
//	typelist ./...                           # types without a String method
//	typelist method Close ./internal/...     # types without a Close method
//	typelist interface io.Closer ./...       # types not implementing io.Closer
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
