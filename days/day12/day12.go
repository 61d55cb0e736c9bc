// Package day12 solves "Rain Risk": navigate a ferry by instructions.
package day12

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

type point = input.Point[int]

var compass = map[byte]point{
	'N': {X: 0, Y: -1},
	'S': {X: 0, Y: 1},
	'E': {X: 1, Y: 0},
	'W': {X: -1, Y: 0},
}

// Instruction such as "F10".
type Instruction struct {
	Action byte
	Value  int
}

func init() { aoc.Register(12, Solve) }

// Parse one instruction per line.
func Parse(lines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 {
			return nil, fmt.Errorf("line %d: invalid instruction %q", i+1, line)
		}
		value, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		action := line[0]
		switch action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if value%90 != 0 {
				return nil, fmt.Errorf("line %d: can only turn in multiples of 90 degrees", i+1)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown action %q", i+1, action)
		}
		out = append(out, Instruction{Action: action, Value: value})
	}
	return out, nil
}

// Navigate follows the instructions and returns the final position.
//
// The ship moves towards heading on F. When waypoint is false, compass actions move
// the ship itself; otherwise they move the heading, which is then a waypoint
// relative to the ship.
func Navigate(instructions []Instruction, heading point, waypoint bool) point {
	ship := point{}
	for _, in := range instructions {
		switch in.Action {
		case 'F':
			ship = ship.Add(heading.Scale(in.Value))
		case 'L':
			for i := 0; i < in.Value/90; i++ {
				heading = heading.RotateLeft()
			}
		case 'R':
			for i := 0; i < in.Value/90; i++ {
				heading = heading.RotateRight()
			}
		default:
			move := compass[in.Action].Scale(in.Value)
			if waypoint {
				heading = heading.Add(move)
			} else {
				ship = ship.Add(move)
			}
		}
	}
	return ship
}

// Solve returns the Manhattan distance travelled with direct and waypoint navigation.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	instructions, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{
		Part1: int64(Navigate(instructions, point{X: 1, Y: 0}, false).Manhattan()),
		Part2: int64(Navigate(instructions, point{X: 10, Y: -1}, true).Manhattan()),
	}, nil
}
