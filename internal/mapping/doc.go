// Package mapping normalizes enum declarations into a mapping table.
//
// A declaration is a symbolic variant name with an optional annotation. The
// normalizer resolves every declaration to a fixed string representation:
// the annotation's value when it is a string literal, the variant name
// otherwise. The resulting Table keeps declaration order, which the plan
// package relies on when it derives the generated conversions.
//
// Normalization never fails. Questionable input is reported through
// diagnostic.Diagnostics and otherwise degrades to the name fallback.
package mapping
