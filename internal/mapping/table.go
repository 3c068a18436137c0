package mapping

import (
	"fmt"

	"strenum/internal/diagnostic"
)

// Declaration is one declared variant, in source order.
type Declaration struct {
	// Name is the Go identifier of the variant.
	Name string
	// Value is the canonical text of the constant value (e.g. "3").
	// Variants sharing a Value are aliases of one another.
	Value string
	// Literal is the optional string annotation.
	Literal Literal
}

// Pair is a normalized (name, representation) association.
type Pair struct {
	Name  string
	Value string
	// Repr is the string used by every generated conversion. It is fixed at
	// normalization and never empty.
	Repr string
}

// Table is the ordered list of pairs for one enum type.
// Pairs are in declaration order.
type Table struct {
	Enum  string
	Pairs []Pair
}

// Normalize resolves declarations into a Table of equal length and order.
//
// A string literal becomes the representation. A missing annotation, a
// non-string annotation or an empty string falls back to the variant name.
// Duplicate representations are kept as declared. Fallbacks other than the
// missing-annotation case and duplicates are reported as warnings.
func Normalize(enum string, decls []Declaration) (*Table, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	t := &Table{
		Enum:  enum,
		Pairs: make([]Pair, 0, len(decls)),
	}

	firstByRepr := make(map[string]string, len(decls))

	for _, d := range decls {
		repr := d.Name

		switch d.Literal.Kind {
		case LiteralString:
			if d.Literal.Value == "" {
				diags.AddWarning(diagnostic.CodeEmptyRepresentation,
					"empty string annotation, using the variant name", enum, d.Name)
			} else {
				repr = d.Literal.Value
			}

		case LiteralOther:
			diags.AddWarning(diagnostic.CodeInvalidDiscriminant,
				fmt.Sprintf("annotation %s is not a string literal, using the variant name", d.Literal.Source),
				enum, d.Name)

		case LiteralNone:
		}

		if first, ok := firstByRepr[repr]; ok {
			diags.AddWarning(diagnostic.CodeDuplicateRepresentation,
				fmt.Sprintf("representation %q is already used by %s", repr, first),
				enum, d.Name)
		} else {
			firstByRepr[repr] = d.Name
		}

		t.Pairs = append(t.Pairs, Pair{Name: d.Name, Value: d.Value, Repr: repr})
	}

	return t, diags
}

// Longest returns the longest representation and its length in bytes.
// The fold runs in declaration order and only a strictly longer entry
// replaces the running maximum, so the earliest of equally long
// representations is returned.
func (t *Table) Longest() (string, int) {
	var longest string

	for _, p := range t.Pairs {
		if len(p.Repr) > len(longest) {
			longest = p.Repr
		}
	}

	return longest, len(longest)
}

// Len returns the number of pairs.
func (t *Table) Len() int {
	return len(t.Pairs)
}

// Names returns the variant names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Pairs))
	for i, p := range t.Pairs {
		names[i] = p.Name
	}

	return names
}
