// Package diagnostic provides structured warnings and errors reported while
// deriving string mappings for enum types.
//
// The core transform never fails; questionable input such as a non-string
// annotation or two variants sharing a representation is reported here and
// left to the caller to surface or, in strict mode, to reject.
package diagnostic
