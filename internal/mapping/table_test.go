package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strenum/internal/diagnostic"
)

func TestNormalize_StringLiteral(t *testing.T) {
	table, diags := Normalize("Method", []Declaration{
		{Name: "Get", Value: "0", Literal: StringLiteral("Hi")},
		{Name: "Post", Value: "1", Literal: NoLiteral()},
	})

	require.Zero(t, diags.Len())
	assert.Equal(t, "Method", table.Enum)
	assert.Equal(t, []Pair{
		{Name: "Get", Value: "0", Repr: "Hi"},
		{Name: "Post", Value: "1", Repr: "Post"},
	}, table.Pairs)
}

func TestNormalize_NonStringFallsBackToName(t *testing.T) {
	table, diags := Normalize("Method", []Declaration{
		{Name: "Get", Value: "0", Literal: OtherLiteral("42")},
	})

	require.Len(t, table.Pairs, 1)
	assert.Equal(t, "Get", table.Pairs[0].Repr)

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeInvalidDiscriminant, diags.Warnings[0].Code)
	assert.Equal(t, "Get", diags.Warnings[0].Variant)
	assert.Contains(t, diags.Warnings[0].Message, "42")
}

func TestNormalize_EmptyStringFallsBackToName(t *testing.T) {
	table, diags := Normalize("Method", []Declaration{
		{Name: "Get", Value: "0", Literal: StringLiteral("")},
	})

	assert.Equal(t, "Get", table.Pairs[0].Repr)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeEmptyRepresentation, diags.Warnings[0].Code)
}

func TestNormalize_DuplicatesKeptAndReported(t *testing.T) {
	table, diags := Normalize("Op", []Declaration{
		{Name: "Lt", Value: "0", Literal: StringLiteral("<")},
		{Name: "Less", Value: "1", Literal: StringLiteral("<")},
		{Name: "Gt", Value: "2", Literal: StringLiteral(">")},
	})

	require.Len(t, table.Pairs, 3)
	assert.Equal(t, []string{"Lt", "Less", "Gt"}, table.Names())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateRepresentation, diags.Warnings[0].Code)
	assert.Equal(t, "Less", diags.Warnings[0].Variant)
	assert.Contains(t, diags.Warnings[0].Message, "Lt")
}

func TestNormalize_NameCollidingWithLiteral(t *testing.T) {
	// The fallback name of B equals A's explicit literal.
	_, diags := Normalize("E", []Declaration{
		{Name: "A", Value: "0", Literal: StringLiteral("B")},
		{Name: "B", Value: "1"},
	})

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "B", diags.Warnings[0].Variant)
}

func TestNormalize_Empty(t *testing.T) {
	table, diags := Normalize("E", nil)

	assert.Zero(t, table.Len())
	assert.Zero(t, diags.Len())

	longest, n := table.Longest()
	assert.Empty(t, longest)
	assert.Zero(t, n)
}

func TestTable_Longest(t *testing.T) {
	table, _ := Normalize("Method", []Declaration{
		{Name: "GET", Literal: StringLiteral("GET")},
		{Name: "HEAD", Literal: StringLiteral("HEAD")},
		{Name: "CONNECT", Literal: StringLiteral("CONNECT")},
	})

	longest, n := table.Longest()
	assert.Equal(t, "CONNECT", longest)
	assert.Equal(t, 7, n)
}

func TestTable_LongestTieKeepsEarliest(t *testing.T) {
	table, _ := Normalize("Version", []Declaration{
		{Name: "Http2", Literal: StringLiteral("HTTP/2")},
		{Name: "Http1_0", Literal: StringLiteral("HTTP/1.0")},
		{Name: "Http1_1", Literal: StringLiteral("HTTP/1.1")},
	})

	longest, n := table.Longest()
	assert.Equal(t, "HTTP/1.0", longest)
	assert.Equal(t, 8, n)
}

func TestTable_LongestCountsBytes(t *testing.T) {
	table, _ := Normalize("Arrow", []Declaration{
		{Name: "Right", Literal: StringLiteral("→")},
		{Name: "Ascii", Literal: StringLiteral("->")},
	})

	_, n := table.Longest()
	assert.Equal(t, 3, n)
}

func TestLiteralKind_String(t *testing.T) {
	assert.Equal(t, "None", LiteralNone.String())
	assert.Equal(t, "String", LiteralString.String())
	assert.Equal(t, "Other", LiteralOther.String())
	assert.Equal(t, "LiteralKind(7)", LiteralKind(7).String())
}

func TestStringLiteral_Source(t *testing.T) {
	assert.Equal(t, `"a\"b"`, StringLiteral(`a"b`).Source)
	assert.Equal(t, "1 + 2", OtherLiteral("1 + 2").Source)
}
