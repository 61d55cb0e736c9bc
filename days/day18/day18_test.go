package day18

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr     string
		flat     int64
		advanced int64
	}{
		{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
		{"1 + (2 * 3) + (4 * (5 + 6))", 51, 51},
		{"2 * 3 + (4 * 5)", 26, 46},
		{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
		{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
		{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			expr, err := Parse("", test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.flat, expr.Eval(Flat))
			assert.Equal(t, test.advanced, expr.Eval(Advanced))
		})
	}
}

func TestParse(t *testing.T) {
	expr, err := Parse("", "2 * (3 + 4)")
	require.NoError(t, err)
	two, three, four := int64(2), int64(3), int64(4)
	assert.Equal(t, &Expr{
		Head: &Term{Number: &two},
		Tail: []*OpTerm{{Op: "*", Term: &Term{Sub: &Expr{
			Head: &Term{Number: &three},
			Tail: []*OpTerm{{Op: "+", Term: &Term{Number: &four}}},
		}}}},
	}, expr, repr.String(expr))
	assert.Equal(t, "2 * (3 + 4)", expr.String())
}

func TestParseError(t *testing.T) {
	_, err := Parse("line 3", "1 + (2 * 3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 3:1:")
}

func TestSolve(t *testing.T) {
	solution, err := Solve(strings.NewReader("2 * 3 + (4 * 5)\n5 + (8 * 3 + 9 + 3 * 4 * 3)\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(26+437), solution.Part1)
	assert.Equal(t, int64(46+1445), solution.Part2)
}
