package aoc

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrNoSolution is returned by solvers when the input has no answer.
var ErrNoSolution = errors.New("no solution")

// Solution is the pair of answers for a day.
type Solution struct {
	Day   int   `json:"day" yaml:"day"`
	Part1 int64 `json:"part1" yaml:"part1"`
	Part2 int64 `json:"part2" yaml:"part2"`
	// Warnings are non-fatal observations about the input, eg. day 19
	// messages that could need a deeper grammar unrolling than configured.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (s Solution) String() string {
	return fmt.Sprintf("day %d: part 1 = %d, part 2 = %d", s.Day, s.Part1, s.Part2)
}

// A Solver reads a puzzle input and computes both answers.
type Solver func(r io.Reader) (Solution, error)

var (
	registryLock sync.Mutex
	registry     = map[int]Solver{}
)

// Register a Solver for a day.
//
// It panics if the day is out of range or already registered.
func Register(day int, solver Solver) {
	registryLock.Lock()
	defer registryLock.Unlock()
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("aoc: day %d out of range", day))
	}
	if _, ok := registry[day]; ok {
		panic(fmt.Sprintf("aoc: day %d registered twice", day))
	}
	registry[day] = func(r io.Reader) (Solution, error) {
		solution, err := solver(r)
		solution.Day = day
		return solution, err
	}
}

// Lookup the Solver for a day.
func Lookup(day int) (Solver, bool) {
	registryLock.Lock()
	defer registryLock.Unlock()
	solver, ok := registry[day]
	return solver, ok
}

// Days returns the registered days in ascending order.
func Days() []int {
	registryLock.Lock()
	defer registryLock.Unlock()
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
