package day16

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rateExample = `class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
`
	assignExample = `class: 0-1 or 4-19
departure row: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
`
)

func TestParse(t *testing.T) {
	notes, err := Parse(strings.NewReader(assignExample))
	require.NoError(t, err)
	require.Len(t, notes.Fields, 3)
	assert.Equal(t, "departure row", notes.Fields[1].Name())
	assert.Equal(t, []*Range{{0, 5}, {8, 19}}, notes.Fields[1].Ranges)
	assert.Equal(t, []int{11, 12, 13}, notes.Yours.Values)
	assert.Len(t, notes.Nearby, 3)
	assert.Equal(t, 9, notes.Nearby[0].Pos.Line)
}

func TestParseRaggedTicket(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Replace(rateExample, "38,6,12", "38,6", 1)))
	assert.EqualError(t, err, "12:1: ticket has 2 values, expected 3")
}

func TestErrorRate(t *testing.T) {
	notes, err := Parse(strings.NewReader(rateExample))
	require.NoError(t, err)
	assert.Equal(t, 71, notes.ErrorRate())
	assert.Len(t, notes.Valid(), 1)
}

func TestAssign(t *testing.T) {
	notes, err := Parse(strings.NewReader(assignExample))
	require.NoError(t, err)
	assigned, err := notes.Assign()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"departure row": 0, "class": 1, "seat": 2}, assigned)
}

func TestAssignAmbiguous(t *testing.T) {
	notes, err := Parse(strings.NewReader("a: 1-10 or 20-30\nb: 1-10 or 20-30\n\nyour ticket:\n1,2\n\nnearby tickets:\n3,4\n"))
	require.NoError(t, err)
	_, err = notes.Assign()
	assert.EqualError(t, err, "fields are ambiguous, 0 of 2 assigned")
}

func TestSolve(t *testing.T) {
	solution, err := Solve(strings.NewReader(assignExample))
	require.NoError(t, err)
	assert.Equal(t, int64(0), solution.Part1)
	assert.Equal(t, int64(11), solution.Part2)
}
