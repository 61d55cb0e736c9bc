// Package day18 solves "Operation Order": evaluate arithmetic with unusual precedence rules.
//
// Expressions are parsed into a flat list of operands and operators, and
// precedence is applied at evaluation time by precedence climbing, so the same
// parse serves both sets of rules.
package day18

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Precedence of each operator. Higher binds tighter. All operators are left associative.
type Precedence map[string]int

// Precedence rules.
var (
	// Flat evaluates strictly left to right.
	Flat = Precedence{"+": 1, "*": 1}
	// Advanced evaluates addition before multiplication.
	Advanced = Precedence{"+": 2, "*": 1}
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[-+*/()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
)

// Expr is an operand followed by any number of operator/operand pairs.
type Expr struct {
	Head *Term     `parser:"@@"`
	Tail []*OpTerm `parser:"@@*"`
}

// OpTerm is an operator and its right hand operand.
type OpTerm struct {
	Op   string `parser:"@(\"+\" | \"*\")"`
	Term *Term  `parser:"@@"`
}

// Term is a number or a parenthesised expression.
type Term struct {
	Number *int64 `parser:"  @Int"`
	Sub    *Expr  `parser:"| \"(\" @@ \")\""`
}

func (e *Expr) String() string {
	out := e.Head.String()
	for _, t := range e.Tail {
		out += " " + t.Op + " " + t.Term.String()
	}
	return out
}

func (t *Term) String() string {
	if t.Number != nil {
		return fmt.Sprint(*t.Number)
	}
	return "(" + t.Sub.String() + ")"
}

func init() { aoc.Register(18, Solve) }

// Parse a single expression.
func Parse(filename, s string) (*Expr, error) {
	return parser.ParseString(filename, s)
}

// Eval evaluates the expression under the given precedence rules.
func (e *Expr) Eval(prec Precedence) int64 {
	c := &climber{prec: prec, ops: e.Tail}
	return c.climb(e.Head.Eval(prec), 0)
}

// Eval evaluates the term under the given precedence rules.
func (t *Term) Eval(prec Precedence) int64 {
	if t.Number != nil {
		return *t.Number
	}
	return t.Sub.Eval(prec)
}

type climber struct {
	prec Precedence
	ops  []*OpTerm
	pos  int
}

// climb folds operators binding at least as tightly as minPrec into lhs.
func (c *climber) climb(lhs int64, minPrec int) int64 {
	for c.pos < len(c.ops) && c.prec[c.ops[c.pos].Op] >= minPrec {
		op := c.ops[c.pos]
		c.pos++
		rhs := op.Term.Eval(c.prec)
		for c.pos < len(c.ops) && c.prec[c.ops[c.pos].Op] > c.prec[op.Op] {
			rhs = c.climb(rhs, c.prec[c.ops[c.pos].Op])
		}
		lhs = apply(op.Op, lhs, rhs)
	}
	return lhs
}

func apply(op string, lhs, rhs int64) int64 {
	switch op {
	case "+":
		return lhs + rhs
	case "*":
		return lhs * rhs
	}
	panic("unsupported operator " + op)
}

// Solve sums every line of homework under both precedence rules.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	solution := aoc.Solution{}
	for i, line := range lines {
		expr, err := Parse(fmt.Sprintf("line %d", i+1), line)
		if err != nil {
			return aoc.Solution{}, err
		}
		solution.Part1 += expr.Eval(Flat)
		solution.Part2 += expr.Eval(Advanced)
	}
	return solution, nil
}
