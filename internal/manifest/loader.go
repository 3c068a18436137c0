package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"strenum/internal/mapping"
	"strenum/internal/plan"
)

// DefaultUnderlying is the integer type of manifest enums without one.
const DefaultUnderlying = "int"

// LoadFile loads and parses a YAML manifest from the given path.
// A missing output name defaults to "<manifest base>_strenum.go".
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f.Output == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		f.Output = strings.ToLower(base) + "_strenum.go"
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Enums {
		if f.Enums[i].Underlying == "" {
			f.Enums[i].Underlying = DefaultUnderlying
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Requests converts the manifest into plan requests. Constant values are
// the iota index of each variant.
func (f *File) Requests() []plan.Request {
	reqs := make([]plan.Request, 0, len(f.Enums))

	for _, e := range f.Enums {
		r := plan.Request{
			Type:       e.Type,
			Declare:    true,
			Underlying: e.Underlying,
			Doc:        e.Doc,
		}

		for i, v := range e.Variants {
			r.Declarations = append(r.Declarations, mappingDecl(v, strconv.Itoa(i)))
		}

		reqs = append(reqs, r)
	}

	return reqs
}

// FromRequests builds a manifest declaring the requested enums. Constant
// values are not carried over: manifest variants are numbered by iota.
func FromRequests(pkg string, reqs []plan.Request) *File {
	f := &File{Package: pkg}

	for _, r := range reqs {
		e := Enum{
			Type:       r.Type,
			Underlying: r.Underlying,
			Doc:        r.Doc,
			Variants:   make([]Variant, len(r.Declarations)),
		}

		for i, d := range r.Declarations {
			e.Variants[i] = Variant{Name: d.Name, Literal: d.Literal}
		}

		f.Enums = append(f.Enums, e)
	}

	return f
}

func mappingDecl(v Variant, value string) mapping.Declaration {
	return mapping.Declaration{
		Name:    v.Name,
		Value:   value,
		Literal: v.Literal,
	}
}
