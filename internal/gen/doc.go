// Package gen renders enum plans into Go source.
//
// Generation uses text/template + go/format. Every enum gets:
//   - String and Len methods (variant → string)
//   - Parse<T> (exact string → variant)
//   - Cut<T>Prefix (longest representation at the start of a string)
//   - <T>MaxLen, <T>Values, IsValid and ErrUnknown<T>
//   - MarshalText/UnmarshalText unless disabled
//
// Enums loaded from a manifest also get their type and iota constants.
// Output is deterministic: the same plan always renders the same bytes.
package gen
