package mapping

import "strconv"

//go:generate go tool stringer -type=LiteralKind -trimprefix=Literal -output=literalkind_string.go

// LiteralKind classifies the annotation attached to a variant.
type LiteralKind int

const (
	// LiteralNone means the variant carries no annotation.
	LiteralNone LiteralKind = iota
	// LiteralString is a genuine string literal.
	LiteralString
	// LiteralOther is an annotation that is present but not a string literal,
	// e.g. a number, a boolean or an arbitrary expression.
	LiteralOther
)

// Literal is the optional annotation of a variant.
type Literal struct {
	Kind LiteralKind
	// Value is the unquoted string for LiteralString.
	Value string
	// Source is the annotation as written, kept for diagnostics.
	Source string
}

// NoLiteral returns the absent annotation.
func NoLiteral() Literal {
	return Literal{Kind: LiteralNone}
}

// StringLiteral returns a string annotation holding v.
func StringLiteral(v string) Literal {
	return Literal{Kind: LiteralString, Value: v, Source: strconv.Quote(v)}
}

// OtherLiteral returns a non-string annotation written as src.
func OtherLiteral(src string) Literal {
	return Literal{Kind: LiteralOther, Source: src}
}
