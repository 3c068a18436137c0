package plan

import (
	"strenum/internal/diagnostic"
	"strenum/internal/mapping"
)

// Request describes one enum type to synthesize.
type Request struct {
	// Type is the Go name of the enum type.
	Type string
	// Declarations are the variants in declaration order.
	Declarations []mapping.Declaration
	// Declare makes the generator emit the type and its constants.
	// Front-ends that read an existing Go type leave it false.
	Declare bool
	// Underlying is the integer type used when Declare is set.
	Underlying string
	// Doc is the type's doc comment when Declare is set.
	Doc string
}

// Arm is one branch of a generated switch.
type Arm struct {
	// Name is the variant identifier.
	Name string
	// Repr is the variant representation.
	Repr string
}

// Len returns the byte length of the representation.
func (a Arm) Len() int {
	return len(a.Repr)
}

// EnumPlan holds everything needed to render one enum.
type EnumPlan struct {
	Type       string
	Declare    bool
	Underlying string
	Doc        string
	// Variants are all pairs in declaration order.
	Variants []mapping.Pair
	// ToString has one arm per distinct constant value.
	ToString []Arm
	// Exact is the exact-match order.
	Exact []Arm
	// Prefix is the prefix-match order.
	Prefix []Arm
	// Longest is the longest representation; MaxLen is its byte length.
	Longest string
	MaxLen  int
	// Diagnostics reported while normalizing this enum.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedPackagePlan is the final output of resolution for one package.
type ResolvedPackagePlan struct {
	// Package is the Go package name of the generated file.
	Package string
	// Enums in request order.
	Enums []*EnumPlan
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}
