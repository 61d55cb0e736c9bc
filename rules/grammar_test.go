package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleRules = `0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"`

func TestParseString(t *testing.T) {
	table, err := ParseString(exampleRules)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, table.IDs())

	rule, ok := table.Get("0")
	require.True(t, ok)
	assert.Equal(t, Concat{Ref("4"), Ref("1"), Ref("5")}, rule.Body)

	rule, ok = table.Get("1")
	require.True(t, ok)
	assert.Equal(t, Alt{Concat{Ref("2"), Ref("3")}, Concat{Ref("3"), Ref("2")}}, rule.Body)
	assert.Equal(t, 2, rule.Pos.Line)

	rule, ok = table.Get("4")
	require.True(t, ok)
	assert.Equal(t, Literal("a"), rule.Body)
}

func TestParseIgnoresBlankLinesAndIndentation(t *testing.T) {
	table, err := ParseString("\n  0: 1 | 2\n\n\t1: \"a\"  \r\n2: \"b\"\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	rule, _ := table.Get("0")
	assert.Equal(t, Alt{Ref("1"), Ref("2")}, rule.Body)
}

func TestParseReader(t *testing.T) {
	table, err := Parse(strings.NewReader(exampleRules))
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Node
	}{
		{"Literal", `"a"`, Literal("a")},
		{"Reference", `42`, Ref("42")},
		{"Sequence", `42 31`, Concat{Ref("42"), Ref("31")}},
		{"Alternatives", `42 | 31`, Alt{Ref("42"), Ref("31")}},
		{"LegacyLoop", `( 42 )+`, Plus{Node: Ref("42")}},
		{"Group", `42 ( 31 | 42 ) 31`, Concat{Ref("42"), Alt{Ref("31"), Ref("42")}, Ref("31")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := ParseBody(test.body)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"TrailingAlternation", `0: 1 |`},
		{"MultiCharacterLiteral", `0: "ab"`},
		{"EmptyLiteral", `0: ""`},
		{"MissingColon", `0 1 2`},
		{"MissingBody", `0:`},
		{"Redefinition", "0: 1\n0: 2"},
		{"MixedLiteral", `0: 1 "a"`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseString(test.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedGrammar), "%v", err)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("0: 1\n1: \"ab\"")
	require.Error(t, err)
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "1", gerr.Rule)
	assert.Equal(t, 2, gerr.Position().Line)
	assert.Contains(t, err.Error(), "single character")
}

func TestTableStringRoundTrip(t *testing.T) {
	table, err := ParseString(exampleRules)
	require.NoError(t, err)
	assert.Equal(t, exampleRules, table.String())

	again, err := ParseString(table.String())
	require.NoError(t, err)
	assert.Equal(t, table.String(), again.String())
}

func TestTableWithDoesNotModifyReceiver(t *testing.T) {
	table, err := ParseString("0: 8 11\n8: 42\n11: 42 31\n42: \"a\"\n31: \"b\"")
	require.NoError(t, err)

	overridden := table.With(PartTwo(2))
	rule, _ := table.Get("8")
	assert.Equal(t, Ref("42"), rule.Body)
	rule, _ = overridden.Get("8")
	assert.Equal(t, Plus{Node: Ref("42")}, rule.Body)
	assert.Equal(t, table.IDs(), overridden.IDs())

	added := table.With(map[string]Node{"99": Literal("c"), "50": Literal("d")})
	assert.Equal(t, []string{"0", "8", "11", "42", "31", "50", "99"}, added.IDs())
	assert.Equal(t, 5, table.Len())
}
