// Package aoc holds the solver registry shared by the Advent of Code 2020
// day packages.
//
// Each day lives in its own package under days/ and registers itself from
// an init function:
//
//	func init() { aoc.Register(19, Solve) }
//
// A Solver reads the raw puzzle input and returns both answers:
//
//	solver, ok := aoc.Lookup(19)
//	solution, err := solver(os.Stdin)
//
// The grammar expander used by day 19 is in the rules package.
package aoc
