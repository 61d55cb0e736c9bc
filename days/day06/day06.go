// Package day06 solves "Custom Customs": tally customs declaration answers per group.
package day06

import (
	"io"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

func init() { aoc.Register(6, Solve) }

// Group of people, one line of answered questions each.
type Group []string

// Anyone counts questions answered by at least one person.
func (g Group) Anyone() int {
	return len(g.tally())
}

// Everyone counts questions answered by every person.
func (g Group) Everyone() int {
	count := 0
	for _, n := range g.tally() {
		if n == len(g) {
			count++
		}
	}
	return count
}

func (g Group) tally() map[rune]int {
	tally := map[rune]int{}
	for _, person := range g {
		seen := map[rune]bool{}
		for _, question := range person {
			if !seen[question] {
				seen[question] = true
				tally[question]++
			}
		}
	}
	return tally
}

// Solve sums Anyone and Everyone over all groups.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	solution := aoc.Solution{}
	for _, group := range input.Groups(lines) {
		solution.Part1 += int64(Group(group).Anyone())
		solution.Part2 += int64(Group(group).Everyone())
	}
	return solution, nil
}
