package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aocgo/aoc2020"
)

const rulesExample = `0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"

ababbb
bababa
abbbab
aaabbb
aaaabbb
`

func testContext(format, stdin string) (*Context, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &Context{
		Format: format,
		Log:    zerolog.Nop(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
	}, stdout
}

func TestParseFlags(t *testing.T) {
	t.Setenv("AOC_LOG_LEVEL", "debug")
	cli := &CLI{}
	parser, err := newParser(cli)
	require.NoError(t, err)
	kctx, err := parser.Parse([]string{"--format=json", "rules", "--part-two", "--depth=3"})
	require.NoError(t, err)
	assert.Equal(t, "rules", kctx.Command())
	assert.Equal(t, "json", cli.Format)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, "0", cli.Rules.Root)
	assert.True(t, cli.Rules.PartTwo)
	assert.Equal(t, 3, cli.Rules.Depth)
}

func TestParseFlagsInvalidFormat(t *testing.T) {
	parser, err := newParser(&CLI{})
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--format=xml", "list"})
	assert.Error(t, err)
}

func TestSolveText(t *testing.T) {
	ctx, stdout := testContext("text", "1721\n979\n366\n299\n675\n1456\n")
	err := (&solveCmd{Day: 1}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "day 1: part 1 = 514579, part 2 = 241861950\n", stdout.String())
}

func TestSolveJSON(t *testing.T) {
	ctx, stdout := testContext("json", "F10\nN3\nF7\nR90\nF11\n")
	err := (&solveCmd{Day: 12}).Run(ctx)
	require.NoError(t, err)
	solution := aoc.Solution{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &solution))
	assert.Equal(t, aoc.Solution{Day: 12, Part1: 25, Part2: 286}, solution)
}

func TestSolveDepth(t *testing.T) {
	const grammar = "0: 8 11\n8: 42\n11: 42 31\n42: \"a\"\n31: \"b\"\n\naab\naaabb\nba\n"
	ctx, stdout := testContext("yaml", grammar)
	err := (&solveCmd{Day: 19, Depth: 2}).Run(ctx)
	require.NoError(t, err)
	solution := aoc.Solution{}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &solution))
	assert.Equal(t, aoc.Solution{Day: 19, Part1: 1, Part2: 2}, solution)
}

func TestSolveErrors(t *testing.T) {
	ctx, _ := testContext("text", "")
	err := (&solveCmd{Day: 25}).Run(ctx)
	assert.EqualError(t, err, `no solver for day 25, try "list"`)

	ctx, _ = testContext("text", "1\nx\n")
	err = (&solveCmd{Day: 1}).Run(ctx)
	assert.EqualError(t, err, `day 01: line 2: strconv.Atoi: parsing "x": invalid syntax`)
}

func TestRules(t *testing.T) {
	ctx, stdout := testContext("text", rulesExample)
	err := (&rulesCmd{Root: "0", Depth: 5}).Run(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout.String(), "\n2 of 5 messages match rule 0\n"), stdout.String())
}

func TestRulesJSON(t *testing.T) {
	ctx, stdout := testContext("json", rulesExample)
	err := (&rulesCmd{Root: "1", Depth: 5}).Run(ctx)
	require.NoError(t, err)
	report := ruleReport{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, ruleReport{
		Root:       "1",
		Pattern:    "(?:aa|bb)(?:ab|ba)|(?:ab|ba)(?:aa|bb)",
		Discovered: 5,
		Expanded:   5,
		Passes:     3,
		Messages:   5,
		Matched:    0,
	}, report)
}

func TestRulesAST(t *testing.T) {
	ctx, stdout := testContext("text", "0: 1 1\n1: \"a\"\n")
	err := (&rulesCmd{Root: "0", AST: true}).Run(ctx)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "rules.Concat{")
	assert.Contains(t, stdout.String(), "0 of 0 messages match rule 0")
}

func TestRulesUndefinedRoot(t *testing.T) {
	ctx, _ := testContext("text", rulesExample)
	err := (&rulesCmd{Root: "9"}).Run(ctx)
	assert.EqualError(t, err, "unknown rule identifier: root rule 9 is not defined")
}

func TestList(t *testing.T) {
	ctx, stdout := testContext("text", "")
	require.NoError(t, (&listCmd{}).Run(ctx))
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 19)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "19", lines[18])
}
