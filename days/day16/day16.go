// Package day16 solves "Ticket Translation": validate tickets and work out which field is which.
package day16

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
)

// DeparturePrefix selects the fields whose values are multiplied for part 2.
const DeparturePrefix = "departure"

var (
	notesLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Header", Pattern: `(?:your ticket|nearby tickets):`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-z]+`},
		{Name: "Punct", Pattern: `[-:,]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Notes](
		participle.Lexer(notesLexer),
		participle.Elide("Whitespace"),
	)
)

// Notes taken about the ticket fields and the tickets seen.
type Notes struct {
	Fields []*Field  `parser:"@@*"`
	Yours  *Ticket   `parser:"\"your ticket:\" @@"`
	Nearby []*Ticket `parser:"\"nearby tickets:\" @@*"`
}

// Field rule such as "departure location: 25-80 or 90-961".
type Field struct {
	Pos lexer.Position

	Words  []string `parser:"@Ident+ \":\""`
	Ranges []*Range `parser:"@@ ( \"or\" @@ )*"`
}

// Range of valid values, inclusive.
type Range struct {
	Low  int `parser:"@Int \"-\""`
	High int `parser:"@Int"`
}

// Ticket values in order.
type Ticket struct {
	Pos lexer.Position

	Values []int `parser:"@Int ( \",\" @Int )*"`
}

// Name of the field.
func (f *Field) Name() string { return strings.Join(f.Words, " ") }

// Valid reports whether v falls in any of the field's ranges.
func (f *Field) Valid(v int) bool {
	for _, r := range f.Ranges {
		if r.Low <= v && v <= r.High {
			return true
		}
	}
	return false
}

func init() { aoc.Register(16, Solve) }

// Parse ticket notes.
func Parse(r io.Reader) (*Notes, error) {
	notes, err := parser.Parse("", r)
	if err != nil {
		return nil, err
	}
	for _, ticket := range append([]*Ticket{notes.Yours}, notes.Nearby...) {
		if len(ticket.Values) != len(notes.Fields) {
			return nil, fmt.Errorf("%s: ticket has %d values, expected %d", ticket.Pos, len(ticket.Values), len(notes.Fields))
		}
	}
	return notes, nil
}

func (n *Notes) anyValid(v int) bool {
	for _, f := range n.Fields {
		if f.Valid(v) {
			return true
		}
	}
	return false
}

// ErrorRate sums the nearby ticket values that are not valid for any field.
func (n *Notes) ErrorRate() int {
	rate := 0
	for _, ticket := range n.Nearby {
		for _, v := range ticket.Values {
			if !n.anyValid(v) {
				rate += v
			}
		}
	}
	return rate
}

// Valid returns the nearby tickets whose values are all valid for some field.
func (n *Notes) Valid() []*Ticket {
	out := []*Ticket{}
next:
	for _, ticket := range n.Nearby {
		for _, v := range ticket.Values {
			if !n.anyValid(v) {
				continue next
			}
		}
		out = append(out, ticket)
	}
	return out
}

// Assign works out the position of each field from your ticket and the valid nearby tickets.
//
// A field is assigned once it is the only candidate for a position, or a position is the
// only candidate for it. It is an error if elimination gets stuck.
func (n *Notes) Assign() (map[string]int, error) {
	tickets := append([]*Ticket{n.Yours}, n.Valid()...)
	// candidates[field][position]
	candidates := make([][]bool, len(n.Fields))
	for i, field := range n.Fields {
		candidates[i] = make([]bool, len(n.Fields))
	positions:
		for pos := range candidates[i] {
			for _, ticket := range tickets {
				if !field.Valid(ticket.Values[pos]) {
					continue positions
				}
			}
			candidates[i][pos] = true
		}
	}
	assigned := map[string]int{}
	fieldDone := make([]bool, len(n.Fields))
	posDone := make([]bool, len(n.Fields))
	for len(assigned) < len(n.Fields) {
		progress := false
		for i := range n.Fields {
			if fieldDone[i] {
				continue
			}
			only, count := -1, 0
			for pos, ok := range candidates[i] {
				if ok && !posDone[pos] {
					only, count = pos, count+1
				}
			}
			if count == 0 {
				return nil, fmt.Errorf("no position fits field %q", n.Fields[i].Name())
			}
			if count == 1 {
				assigned[n.Fields[i].Name()] = only
				fieldDone[i], posDone[only] = true, true
				progress = true
			}
		}
		for pos := range posDone {
			if posDone[pos] {
				continue
			}
			only, count := -1, 0
			for i := range n.Fields {
				if !fieldDone[i] && candidates[i][pos] {
					only, count = i, count+1
				}
			}
			if count == 1 {
				assigned[n.Fields[only].Name()] = pos
				fieldDone[only], posDone[pos] = true, true
				progress = true
			}
		}
		if !progress {
			return nil, fmt.Errorf("fields are ambiguous, %d of %d assigned", len(assigned), len(n.Fields))
		}
	}
	return assigned, nil
}

// Product multiplies the values on your ticket of every field whose name starts with prefix.
func (n *Notes) Product(prefix string) (int64, error) {
	assigned, err := n.Assign()
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for name, pos := range assigned {
		if strings.HasPrefix(name, prefix) {
			product *= int64(n.Yours.Values[pos])
		}
	}
	return product, nil
}

// Solve computes the scanning error rate and the product of the departure fields.
func Solve(r io.Reader) (aoc.Solution, error) {
	notes, err := Parse(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	product, err := notes.Product(DeparturePrefix)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(notes.ErrorRate()), Part2: product}, nil
}
