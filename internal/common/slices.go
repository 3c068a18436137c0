package common

// UnknownStr is the String() result for out-of-range internal enum values.
const UnknownStr = "unknown"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Reversed returns a reversed copy of s. The input is left untouched.
func Reversed[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
