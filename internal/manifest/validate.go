package manifest

import (
	"fmt"
	"go/token"
	"math"

	"strenum/internal/diagnostic"
)

// integerTypes maps each allowed underlying type to its largest value.
// int and uint are taken as 32 bits, the smallest size Go allows.
var integerTypes = map[string]uint64{
	"int": math.MaxInt32, "int8": math.MaxInt8, "int16": math.MaxInt16,
	"int32": math.MaxInt32, "int64": math.MaxInt64,
	"uint": math.MaxUint32, "uint8": math.MaxUint8, "uint16": math.MaxUint16,
	"uint32": math.MaxUint32, "uint64": math.MaxUint64,
	"byte": math.MaxUint8, "rune": math.MaxInt32,
}

// GeneratedNames returns the package-level identifiers emitted for an enum
// type, other than the type and its variants.
func GeneratedNames(typ string) []string {
	return []string{
		typ + "MaxLen",
		typ + "Values",
		"Parse" + typ,
		"Cut" + typ + "Prefix",
		"ErrUnknown" + typ,
	}
}

// Validate checks a manifest for problems that would make the generated
// file fail to compile. All identifiers share the package scope, so
// variant names must be unique across enums.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Package == "" {
		res.AddError("missing_package", "package name is required", "", "")
	} else if !isIdent(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", f.Package), "", "")
	}

	if len(f.Enums) == 0 {
		res.AddError("no_enums", "manifest declares no enums", "", "")
	}

	// identifier -> what declared it
	owners := make(map[string]string)
	claim := func(name, owner, enum, variant string) {
		if prev, ok := owners[name]; ok {
			res.AddError("duplicate_identifier",
				fmt.Sprintf("identifier %s of %s collides with %s", name, owner, prev), enum, variant)
			return
		}

		owners[name] = owner
	}

	for i := range f.Enums {
		e := &f.Enums[i]

		if !isIdent(e.Type) {
			res.AddError("invalid_type", fmt.Sprintf("type name %q is not a Go identifier", e.Type), e.Type, "")
			continue
		}

		claim(e.Type, "type "+e.Type, e.Type, "")

		for _, n := range GeneratedNames(e.Type) {
			claim(n, "the conversions of "+e.Type, e.Type, "")
		}

		if maxValue, ok := integerTypes[e.Underlying]; !ok {
			res.AddError("invalid_underlying",
				fmt.Sprintf("underlying type %q is not an integer type", e.Underlying), e.Type, "")
		} else if n := len(e.Variants); n > 0 && uint64(n-1) > maxValue {
			res.AddError("invalid_underlying",
				fmt.Sprintf("%d variants do not fit in %s (largest value %d)", n, e.Underlying, maxValue), e.Type, "")
		}

		if len(e.Variants) == 0 {
			res.AddError("empty_enum", "enum declares no variants", e.Type, "")
		}

		for _, v := range e.Variants {
			if !isIdent(v.Name) {
				res.AddError("invalid_variant",
					fmt.Sprintf("line %d: variant name %q is not a Go identifier", v.Line, v.Name), e.Type, v.Name)

				continue
			}

			claim(v.Name, "variant "+e.Type+"."+v.Name, e.Type, v.Name)
		}
	}

	return res
}

func isIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}
