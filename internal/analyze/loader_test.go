package analyze

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strenum/internal/mapping"
)

const testPkg = "./testdata/enums"

func load(t *testing.T, typeNames ...string) *PackageInfo {
	t.Helper()

	info, err := NewAnalyzer(Config{}).LoadPackage([]string{testPkg}, typeNames...)
	require.NoError(t, err)
	require.NotNil(t, info)

	return info
}

func TestAnalyzer_LoadPackage(t *testing.T) {
	info := load(t, "Color", "Level")

	assert.Equal(t, "enums", info.Name)
	assert.Equal(t, "strenum/internal/analyze/testdata/enums", info.Path)
	assert.NotEmpty(t, info.Dir)

	require.Len(t, info.Enums, 2)
	assert.Equal(t, "Color", info.Enums[0].ID.Name)
	assert.Equal(t, "int", info.Enums[0].Underlying)
	assert.Equal(t, "Level", info.Enums[1].ID.Name)
	assert.Equal(t, "uint8", info.Enums[1].Underlying)
}

func TestAnalyzer_Annotations(t *testing.T) {
	info := load(t, "Color")

	assert.Equal(t, []mapping.Declaration{
		{Name: "Red", Value: "0", Literal: mapping.StringLiteral("red")},
		{Name: "Green", Value: "1", Literal: mapping.StringLiteral("green")},
		{Name: "Blue", Value: "2", Literal: mapping.OtherLiteral("42")},
		{Name: "Cyan", Value: "3", Literal: mapping.NoLiteral()},
		{Name: "Yellow", Value: "4", Literal: mapping.StringLiteral("yellow")},
		{Name: "Crimson", Value: "0", Literal: mapping.StringLiteral("crimson")},
	}, info.Enums[0].Declarations())
}

func TestAnalyzer_OrderAcrossFiles(t *testing.T) {
	info := load(t, "Level")

	var names []string
	for _, c := range info.Enums[0].Constants {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"LevelZero", "LevelLow", "LevelHigh", "LevelMid"}, names)
	assert.Equal(t, mapping.OtherLiteral(`("high")`), info.Enums[0].Constants[2].Literal)
	assert.Equal(t, "5", info.Enums[0].Constants[3].Value)
}

func TestAnalyzer_Requests(t *testing.T) {
	reqs := load(t, "Color", "Level").Requests()

	require.Len(t, reqs, 2)
	assert.Equal(t, "Color", reqs[0].Type)
	assert.False(t, reqs[0].Declare)
	assert.Len(t, reqs[0].Declarations, 6)
	assert.Len(t, reqs[1].Declarations, 4)
	assert.Equal(t, "uint8", reqs[1].Underlying)
}

func TestAnalyzer_Errors(t *testing.T) {
	a := NewAnalyzer(Config{})

	_, err := a.LoadPackage([]string{testPkg}, "Name")
	require.ErrorIs(t, err, ErrNotEnum)

	_, err = a.LoadPackage([]string{testPkg}, "Colr")
	require.ErrorIs(t, err, ErrTypeNotFound)
	assert.Contains(t, err.Error(), "did you mean Color?")

	_, err = a.LoadPackage([]string{testPkg})
	require.Error(t, err)

	_, err = a.LoadPackage([]string{"./testdata/does-not-exist"}, "Color")
	require.Error(t, err)
}

func TestAnalyzer_UngroupedAnnotations(t *testing.T) {
	info := load(t, "Shade")

	assert.Equal(t, []mapping.Declaration{
		{Name: "Light", Value: "0", Literal: mapping.StringLiteral("light")},
		{Name: "Dark", Value: "1", Literal: mapping.StringLiteral("dark")},
		{Name: "Mid", Value: "2", Literal: mapping.StringLiteral("mid")},
	}, info.Enums[0].Declarations())
}

func TestAnalyzer_SkipsStaleGeneratedFile(t *testing.T) {
	// shade_strenum.go refers to a removed variant and c_shade.go calls a
	// function declared only there; neither blocks loading.
	info := load(t, "Shade")

	require.Len(t, info.Enums, 1)
	assert.Len(t, info.Enums[0].Constants, 3)
}

func TestParseFile(t *testing.T) {
	fset := token.NewFileSet()

	generated := []byte(GeneratedHeaderPrefix + ` -type=X"; DO NOT EDIT.

package p

var broken = Missing
`)

	f, err := parseFile(fset, "x_strenum.go", generated)
	require.NoError(t, err)
	assert.Equal(t, "p", f.Name.Name)
	assert.Empty(t, f.Decls)

	other := []byte("// Code generated by \"stringer\"; DO NOT EDIT.\n\npackage p\n\nconst A = 1 // strenum:\"a\"\n")

	f, err = parseFile(fset, "x_string.go", other)
	require.NoError(t, err)
	require.Len(t, f.Decls, 1)
	assert.NotEmpty(t, f.Comments)
}

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		text string
		want mapping.Literal
	}{
		{`"GET"`, mapping.StringLiteral("GET")},
		{"`a\\b`", mapping.StringLiteral(`a\b`)},
		{`"→"`, mapping.StringLiteral("→")},
		{`""`, mapping.StringLiteral("")},
		{`42`, mapping.OtherLiteral("42")},
		{`'x'`, mapping.OtherLiteral("'x'")},
		{`"a" + "b"`, mapping.OtherLiteral(`"a" + "b"`)},
		{`Get`, mapping.OtherLiteral("Get")},
		{`"unterminated`, mapping.OtherLiteral(`"unterminated`)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnnotation(tt.text))
		})
	}
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "strenum/examples/symbols.Symbol", TypeID{PkgPath: "strenum/examples/symbols", Name: "Symbol"}.String())
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
}
