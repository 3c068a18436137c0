// Package analyze discovers enum types and their constants in Go packages.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. An enum is a
// named type with an integer underlying type; its variants are the
// package-level constants of exactly that type, in source order. A variant
// may carry a string annotation in a comment on its constant spec:
//
//	const (
//		Get Method = iota // strenum:"GET"
//		Post              // no annotation: the name is the representation
//	)
//
// The text after "strenum:" is parsed as a Go expression. Only a string
// literal sets the representation; any other expression is kept as a
// non-string annotation and falls back to the name.
package analyze
