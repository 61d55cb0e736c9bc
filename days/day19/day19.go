// Package day19 solves "Monster Messages": count messages matching a grammar of rules.
//
// The rules are expanded into a regular expression by package rules. Part two
// replaces rules 8 and 11 with self-referential versions, which are expressed as
// a repetition and a balanced alternation unrolled to a configurable depth.
package day19

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
	"github.com/aocgo/aoc2020/rules"
)

// Rules whose repetitions are balanced by the part two override of rule 11.
const (
	Left  = "42"
	Right = "31"
)

// Puzzle is a set of rules and the received messages.
type Puzzle struct {
	Table    *rules.Table
	Messages []string
}

func init() { aoc.Register(19, Solve) }

// Parse the rules, a blank line, then one message per line.
func Parse(r io.Reader) (*Puzzle, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	head, tail := input.Sections(lines)
	table, err := rules.ParseString(strings.Join(head, "\n"))
	if err != nil {
		return nil, err
	}
	return &Puzzle{Table: table, Messages: tail}, nil
}

// Match reports for each message whether it matches the root rule in its entirety.
func (p *Puzzle) Match(options ...rules.Option) ([]bool, error) {
	pattern, err := rules.Expand(p.Table, rules.DefaultRoot, options...)
	if err != nil {
		return nil, err
	}
	re, err := pattern.Compile()
	if err != nil {
		return nil, err
	}
	matched := make([]bool, len(p.Messages))
	for i, msg := range p.Messages {
		matched[i] = re.MatchString(msg)
	}
	return matched, nil
}

// Warnings describes messages that did not match but are long enough that a
// balanced rule 11 deeper than depth could have matched them.
//
// It returns nothing if the table has no Left and Right rules.
func (p *Puzzle) Warnings(matched []bool, depth int) ([]string, error) {
	_, hasLeft := p.Table.Get(Left)
	_, hasRight := p.Table.Get(Right)
	if !hasLeft || !hasRight {
		return nil, nil
	}
	left, err := rules.Expand(p.Table, Left)
	if err != nil {
		return nil, err
	}
	right, err := rules.Expand(p.Table, Right)
	if err != nil {
		return nil, err
	}
	warnings := []string{}
	for i, msg := range p.Messages {
		if matched[i] {
			continue
		}
		// Rule 8 matches Left at least once ahead of rule 11.
		if limit := rules.DepthLimit(left.Node, left.Node, right.Node, utf8.RuneCountInString(msg)); limit > depth {
			warnings = append(warnings, fmt.Sprintf("message %d may need depth %d to match, expanded to %d", i+1, limit, depth))
		}
	}
	return warnings, nil
}

// Solver returns a Solver that unrolls rule 11 to depth for part two.
func Solver(depth int) aoc.Solver {
	return func(r io.Reader) (aoc.Solution, error) {
		puzzle, err := Parse(r)
		if err != nil {
			return aoc.Solution{}, err
		}
		part1, err := puzzle.Match()
		if err != nil {
			return aoc.Solution{}, fmt.Errorf("part 1: %w", err)
		}
		part2, err := puzzle.Match(rules.Overrides(rules.PartTwo(depth)))
		if err != nil {
			return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
		}
		warnings, err := puzzle.Warnings(part2, depth)
		if err != nil {
			return aoc.Solution{}, err
		}
		return aoc.Solution{Part1: count(part1), Part2: count(part2), Warnings: warnings}, nil
	}
}

// Solve counts matching messages with the rules as given and with the looping rules 8 and 11.
func Solve(r io.Reader) (aoc.Solution, error) {
	return Solver(rules.DefaultDepth)(r)
}

func count(matched []bool) int64 {
	n := int64(0)
	for _, ok := range matched {
		if ok {
			n++
		}
	}
	return n
}
