// Package day11 solves "Seating System": run seating rules until nobody moves.
package day11

import (
	"fmt"
	"io"
	"strings"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Cell states.
const (
	Floor    = '.'
	Empty    = 'L'
	Occupied = '#'
)

type point = input.Point[int]

// Layout of the waiting area.
type Layout struct {
	cells  [][]byte
	width  int
	height int
}

// Rules for one seating simulation.
type Rules struct {
	// Visible reports whether a seat can see an occupied seat in direction dir.
	Visible func(l *Layout, p, dir point) bool
	// Tolerance is the number of visible occupied seats that makes someone leave.
	Tolerance int
}

var (
	// Adjacent considers only the eight neighbouring cells, and leaves at four.
	Adjacent = Rules{Visible: (*Layout).adjacent, Tolerance: 4}
	// LineOfSight looks past floor to the first seat in each direction, and leaves at five.
	LineOfSight = Rules{Visible: (*Layout).lineOfSight, Tolerance: 5}
)

func init() { aoc.Register(11, Solve) }

// Parse a layout.
func Parse(lines []string) (*Layout, error) {
	l := &Layout{width: len(lines[0]), height: len(lines)}
	for y, line := range lines {
		if len(line) != l.width {
			return nil, fmt.Errorf("line %d: expected %d cells but got %d", y+1, l.width, len(line))
		}
		for x, c := range []byte(line) {
			if c != Floor && c != Empty && c != Occupied {
				return nil, fmt.Errorf("line %d: invalid cell %q at column %d", y+1, c, x+1)
			}
		}
		l.cells = append(l.cells, []byte(line))
	}
	return l, nil
}

func (l *Layout) at(p point) byte {
	if p.X < 0 || p.Y < 0 || p.X >= l.width || p.Y >= l.height {
		return Floor
	}
	return l.cells[p.Y][p.X]
}

func (l *Layout) inside(p point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.width && p.Y < l.height
}

func (l *Layout) adjacent(p, dir point) bool {
	return l.at(p.Add(dir)) == Occupied
}

func (l *Layout) lineOfSight(p, dir point) bool {
	for q := p.Add(dir); l.inside(q); q = q.Add(dir) {
		switch l.at(q) {
		case Occupied:
			return true
		case Empty:
			return false
		}
	}
	return false
}

// Step applies the rules once, returning the next layout and whether anything changed.
func (l *Layout) Step(rules Rules) (*Layout, bool) {
	next := &Layout{width: l.width, height: l.height, cells: make([][]byte, l.height)}
	changed := false
	for y, row := range l.cells {
		next.cells[y] = append([]byte(nil), row...)
		for x, c := range row {
			if c == Floor {
				continue
			}
			p := point{X: x, Y: y}
			occupied := 0
			for _, dir := range input.Neighbours {
				if rules.Visible(l, p, dir) {
					occupied++
				}
			}
			switch {
			case c == Empty && occupied == 0:
				next.cells[y][x] = Occupied
				changed = true
			case c == Occupied && occupied >= rules.Tolerance:
				next.cells[y][x] = Empty
				changed = true
			}
		}
	}
	return next, changed
}

// Settle steps until the layout stops changing.
func (l *Layout) Settle(rules Rules) *Layout {
	for {
		next, changed := l.Step(rules)
		if !changed {
			return l
		}
		l = next
	}
}

// Occupied counts occupied seats.
func (l *Layout) Occupied() int {
	count := 0
	for _, row := range l.cells {
		for _, c := range row {
			if c == Occupied {
				count++
			}
		}
	}
	return count
}

func (l *Layout) String() string {
	rows := make([]string, 0, len(l.cells))
	for _, row := range l.cells {
		rows = append(rows, string(row))
	}
	return strings.Join(rows, "\n")
}

// Solve counts occupied seats once each rule set settles.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	layout, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{
		Part1: int64(layout.Settle(Adjacent).Occupied()),
		Part2: int64(layout.Settle(LineOfSight).Occupied()),
	}, nil
}
