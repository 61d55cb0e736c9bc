// Package day13 solves "Shuttle Search": bus departures and aligned timetables.
package day13

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Bus with its position in the schedule.
type Bus struct {
	ID     int64
	Offset int64
}

// Notes on the shuttle service.
type Notes struct {
	Earliest int64
	Buses    []Bus
}

func init() { aoc.Register(13, Solve) }

// Parse the earliest departure and the comma separated schedule, where "x" marks an out of service bus.
func Parse(lines []string) (*Notes, error) {
	if len(lines) != 2 {
		return nil, fmt.Errorf("expected 2 lines, got %d", len(lines))
	}
	earliest, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	notes := &Notes{Earliest: earliest}
	for offset, field := range strings.Split(strings.TrimSpace(lines[1]), ",") {
		if field == "x" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("line 2: invalid bus %q", field)
		}
		notes.Buses = append(notes.Buses, Bus{ID: id, Offset: int64(offset)})
	}
	if len(notes.Buses) == 0 {
		return nil, fmt.Errorf("line 2: no buses in service")
	}
	return notes, nil
}

// EarliestBus returns the ID of the first bus to depart at or after Earliest, multiplied by the wait.
func (n *Notes) EarliestBus() int64 {
	var best, wait int64 = 0, -1
	for _, bus := range n.Buses {
		w := (bus.ID - n.Earliest%bus.ID) % bus.ID
		if wait < 0 || w < wait {
			best, wait = bus.ID, w
		}
	}
	return best * wait
}

// Alignment returns the earliest time t at which every bus departs at t+Offset.
//
// It sieves one bus at a time, stepping by the least common multiple of the IDs
// already aligned. Stepping repeats modulo each ID within ID steps, so if none
// of them fits there is no alignment and aoc.ErrNoSolution is returned.
func (n *Notes) Alignment() (int64, error) {
	t, step := int64(0), int64(1)
	for _, bus := range n.Buses {
		found := false
		for i := int64(0); i < bus.ID; i++ {
			if (t+bus.Offset)%bus.ID == 0 {
				found = true
				break
			}
			t += step
		}
		if !found {
			return 0, fmt.Errorf("bus %d at offset %d can't be aligned: %w", bus.ID, bus.Offset, aoc.ErrNoSolution)
		}
		step = lcm(step, bus.ID)
	}
	return t, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 { return a / gcd(a, b) * b }

// Solve finds the earliest bus and the aligned timestamp.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	notes, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	part2, err := notes.Alignment()
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
	}
	return aoc.Solution{Part1: notes.EarliestBus(), Part2: part2}, nil
}
