package analyze

import (
	"go/token"

	"strenum/internal/mapping"
	"strenum/internal/plan"
)

// AnnotationPrefix introduces a representation in a constant comment.
const AnnotationPrefix = "strenum:"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "strenum/examples/symbols"
	Name    string // e.g., "Symbol"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ConstInfo describes one constant of an enum type.
type ConstInfo struct {
	Name string
	// Value is the exact constant value, e.g. "3".
	Value string
	// Literal is the parsed annotation.
	Literal mapping.Literal
	// Pos is the position of the constant name.
	Pos token.Position
}

// EnumInfo describes an enum type found in a package.
type EnumInfo struct {
	ID TypeID
	// Underlying is the name of the integer underlying type.
	Underlying string
	// Constants in source order.
	Constants []ConstInfo
}

// Declarations converts the constants into mapping declarations.
func (e *EnumInfo) Declarations() []mapping.Declaration {
	decls := make([]mapping.Declaration, len(e.Constants))
	for i, c := range e.Constants {
		decls[i] = mapping.Declaration{
			Name:    c.Name,
			Value:   c.Value,
			Literal: c.Literal,
		}
	}

	return decls
}

// PackageInfo holds the enums found in one loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory of the package sources
	// Enums in the order they were requested.
	Enums []*EnumInfo
}

// Requests converts the enums into plan requests. The types already
// exist in Go source, so nothing is declared; Underlying is informational.
func (p *PackageInfo) Requests() []plan.Request {
	reqs := make([]plan.Request, len(p.Enums))
	for i, e := range p.Enums {
		reqs[i] = plan.Request{
			Type:         e.ID.Name,
			Declarations: e.Declarations(),
			Underlying:   e.Underlying,
		}
	}

	return reqs
}
