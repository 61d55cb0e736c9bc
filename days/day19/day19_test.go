package day19

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocgo/aoc2020/rules"
)

const simple = `0: 4 1 5
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

const looping = `42: 9 14 | 10 1
9: 14 27 | 1 26
10: 23 14 | 28 1
1: "a"
11: 42 31
5: 1 14 | 15 1
19: 14 1 | 14 14
12: 24 14 | 19 1
16: 15 1 | 14 14
31: 14 17 | 1 13
6: 14 14 | 1 14
2: 1 24 | 14 4
0: 8 11
13: 14 3 | 1 12
15: 1 | 14
17: 14 2 | 1 7
23: 25 1 | 22 14
28: 16 1
4: 1 1
20: 14 14 | 1 15
3: 5 14 | 16 1
27: 1 6 | 14 18
14: "b"
21: 14 1 | 1 14
25: 1 1 | 1 14
22: 14 14
8: 42
26: 14 22 | 1 20
18: 15 15
7: 14 5 | 1 21
24: 14 1

abbbbbabbbaaaababbaabbbbabababbbabbbbbbabaaaa
bbabbbbaabaabba
babbbbaabbbbbabbbbbbaabaaabaaa
aaabbbbbbaaaabaababaabababbabaaabbababababaaa
bbbbbbbaaaabbbbaaabbabaaa
bbbababbbbaaaaaaaabbababaaababaabab
ababaaaaaabaaab
ababaaaaabbbaba
baabbaaaabbaaaababbaababb
abbbbabbbbaaaababbbbbbaaaababb
aaaaabbaabaaaaababaa
aaaabbaaaabbaaa
aaaabbaabbaaaaaaabbbabbbaaabbaabaaa
babaaabbbaaabaababbaabababaaab
aabbbbbaabbbaaaaaabbbbbababaaaaabbaaabba
`

func TestParse(t *testing.T) {
	puzzle, err := Parse(strings.NewReader(simple))
	require.NoError(t, err)
	assert.Equal(t, 6, puzzle.Table.Len())
	assert.Equal(t, []string{"ababbb", "bababa", "abbbab", "aaabbb", "aaaabbb"}, puzzle.Messages)
}

func TestMatch(t *testing.T) {
	puzzle, err := Parse(strings.NewReader(simple))
	require.NoError(t, err)
	matched, err := puzzle.Match()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false, false}, matched)
}

func TestSolveSimple(t *testing.T) {
	solution, err := Solve(strings.NewReader(simple))
	require.NoError(t, err)
	assert.Equal(t, int64(2), solution.Part1)
	assert.Equal(t, int64(2), solution.Part2)
	assert.Empty(t, solution.Warnings)
}

func TestSolveLooping(t *testing.T) {
	solution, err := Solve(strings.NewReader(looping))
	require.NoError(t, err)
	assert.Equal(t, int64(3), solution.Part1)
	assert.Equal(t, int64(12), solution.Part2)
	assert.Empty(t, solution.Warnings)
}

func TestWarnings(t *testing.T) {
	const grammar = "0: 8 11\n8: 42\n11: 42 31\n42: \"a\"\n31: \"b\"\n\naab\naaabb\nba\n"
	solution, err := Solver(1)(strings.NewReader(grammar))
	require.NoError(t, err)
	assert.Equal(t, int64(1), solution.Part1)
	assert.Equal(t, int64(1), solution.Part2)
	assert.Equal(t, []string{"message 2 may need depth 2 to match, expanded to 1"}, solution.Warnings)

	solution, err = Solver(2)(strings.NewReader(grammar))
	require.NoError(t, err)
	assert.Equal(t, int64(2), solution.Part2)
	assert.Empty(t, solution.Warnings)
}

func TestWarningsNeedRoomForDeeperDepth(t *testing.T) {
	const grammar = "0: 8 11\n8: 42\n11: 42 31\n42: \"a\"\n31: \"b\"\n\n"
	// Twelve characters hold rule 8's "a" and at most five balanced pairs.
	solution, err := Solver(5)(strings.NewReader(grammar + strings.Repeat("b", 12) + "\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), solution.Part2)
	assert.Empty(t, solution.Warnings)

	solution, err = Solver(5)(strings.NewReader(grammar + strings.Repeat("b", 13) + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"message 1 may need depth 6 to match, expanded to 5"}, solution.Warnings)
}

func TestUndefinedRule(t *testing.T) {
	_, err := Solve(strings.NewReader("0: 1 2\n1: \"a\"\n\na\n"))
	assert.True(t, errors.Is(err, rules.ErrUnknownIdentifier), "%v", err)
}
