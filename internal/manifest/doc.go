// Package manifest loads enum declarations from a YAML manifest.
//
// A manifest declares enums that do not exist in Go source yet. The
// generator emits each type as a plain integer type with an iota constant
// block, followed by its conversions.
//
//	package: httpmethod
//	output: method_strenum.go
//	enums:
//	  - type: Method
//	    underlying: uint8
//	    doc: Method is an HTTP request method.
//	    variants:
//	      - GET: "GET"
//	      - Post
//
// A variant is either a bare name or a single-key mapping from the name to
// its representation. The YAML tag of the value decides how it is read:
// strings become the representation, null means no annotation, and any
// other value (numbers, booleans, collections) is kept as a non-string
// annotation that falls back to the variant name.
package manifest
