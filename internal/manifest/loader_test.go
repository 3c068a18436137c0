package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strenum/internal/mapping"
	"strenum/internal/plan"
)

const methodManifest = `
package: httpmethod
enums:
  - type: Method
    doc: Method is an HTTP request method.
    variants:
      - GET: "GET"
      - HEAD: HEAD
      - Post
      - Weird: 42
      - Flag: true
      - Nothing:
      - List: [a, b]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(methodManifest))
	require.NoError(t, err)

	assert.Equal(t, "httpmethod", f.Package)
	require.Len(t, f.Enums, 1)

	e := f.Enums[0]
	assert.Equal(t, "Method", e.Type)
	assert.Equal(t, DefaultUnderlying, e.Underlying)
	assert.Equal(t, "Method is an HTTP request method.", e.Doc)
	require.Len(t, e.Variants, 7)

	assert.Equal(t, "GET", e.Variants[0].Name)
	assert.Equal(t, mapping.StringLiteral("GET"), e.Variants[0].Literal)

	assert.Equal(t, mapping.StringLiteral("HEAD"), e.Variants[1].Literal)

	assert.Equal(t, "Post", e.Variants[2].Name)
	assert.Equal(t, mapping.LiteralNone, e.Variants[2].Literal.Kind)

	assert.Equal(t, mapping.OtherLiteral("42"), e.Variants[3].Literal)
	assert.Equal(t, mapping.OtherLiteral("true"), e.Variants[4].Literal)
	assert.Equal(t, mapping.LiteralNone, e.Variants[5].Literal.Kind)

	assert.Equal(t, mapping.LiteralOther, e.Variants[6].Literal.Kind)
	assert.Equal(t, "[a, b]", e.Variants[6].Literal.Source)

	assert.Positive(t, e.Variants[0].Line)
}

func TestParse_QuotedNumberIsString(t *testing.T) {
	f, err := Parse([]byte(`
package: p
enums:
  - type: Code
    variants:
      - OK: "200"
`))
	require.NoError(t, err)
	assert.Equal(t, mapping.StringLiteral("200"), f.Enums[0].Variants[0].Literal)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "package: p\nenum: []\n"},
		{"numeric variant name", "package: p\nenums:\n  - type: E\n    variants:\n      - 42\n"},
		{"two keys", "package: p\nenums:\n  - type: E\n    variants:\n      - {A: a, B: b}\n"},
		{"sequence variant", "package: p\nenums:\n  - type: E\n    variants:\n      - [A]\n"},
		{"broken yaml", "package: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadFile_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Methods.yaml")
	require.NoError(t, os.WriteFile(path, []byte(methodManifest), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "methods_strenum.go", f.Output)
}

func TestLoadFile_KeepsOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enums.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: p\noutput: x.go\nenums: []\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x.go", f.Output)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestRequests(t *testing.T) {
	f, err := Parse([]byte(methodManifest))
	require.NoError(t, err)

	reqs := f.Requests()
	require.Len(t, reqs, 1)

	r := reqs[0]
	assert.Equal(t, "Method", r.Type)
	assert.True(t, r.Declare)
	assert.Equal(t, "int", r.Underlying)
	require.Len(t, r.Declarations, 7)
	assert.Equal(t, "0", r.Declarations[0].Value)
	assert.Equal(t, "6", r.Declarations[6].Value)
	assert.Equal(t, "Post", r.Declarations[2].Name)
}

func TestMarshal_PreservesLiteralKinds(t *testing.T) {
	f := &File{
		Package: "p",
		Enums: []Enum{{
			Type:       "E",
			Underlying: "int",
			Variants: []Variant{
				{Name: "A", Literal: mapping.StringLiteral("42")},
				{Name: "B", Literal: mapping.NoLiteral()},
				{Name: "C", Literal: mapping.OtherLiteral("1 << 2")},
			},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err, string(data))

	vs := back.Enums[0].Variants
	require.Len(t, vs, 3)
	assert.Equal(t, mapping.StringLiteral("42"), vs[0].Literal)
	assert.Equal(t, mapping.LiteralNone, vs[1].Literal.Kind)
	assert.Equal(t, mapping.OtherLiteral("1 << 2"), vs[2].Literal)
}

func TestFromRequests(t *testing.T) {
	reqs := []plan.Request{{
		Type:       "Level",
		Underlying: "uint8",
		Declarations: []mapping.Declaration{
			{Name: "Low", Value: "0", Literal: mapping.StringLiteral("low")},
			{Name: "High", Value: "7", Literal: mapping.OtherLiteral(`("high")`)},
			{Name: "Mid", Value: "3", Literal: mapping.NoLiteral()},
		},
	}}

	f := FromRequests("levels", reqs)
	require.False(t, Validate(f).HasErrors())

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err, string(data))

	assert.Equal(t, "levels", back.Package)
	require.Len(t, back.Enums, 1)
	assert.Equal(t, "uint8", back.Enums[0].Underlying)

	back.Enums[0].Variants[0].Line = 0
	assert.Equal(t, Variant{Name: "Low", Literal: mapping.StringLiteral("low")}, back.Enums[0].Variants[0])
	assert.Equal(t, mapping.OtherLiteral(`("high")`), back.Enums[0].Variants[1].Literal)
	assert.Equal(t, mapping.LiteralNone, back.Enums[0].Variants[2].Literal.Kind)

	// Values are renumbered.
	assert.Equal(t, "2", back.Requests()[0].Declarations[2].Value)
}
