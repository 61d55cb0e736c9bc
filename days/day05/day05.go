// Package day05 solves "Binary Boarding": decode binary space partitioned seat codes.
package day05

import (
	"fmt"
	"io"
	"sort"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

func init() { aoc.Register(5, Solve) }

// SeatID decodes a ten character boarding pass such as "FBFBBFFRLR".
//
// F/L are zero bits and B/R are one bits, so the code is the row*8+column seat ID directly.
func SeatID(code string) (int, error) {
	if len(code) != 10 {
		return 0, fmt.Errorf("boarding pass %q: expected 10 characters", code)
	}
	id := 0
	for i, c := range code {
		id <<= 1
		switch {
		case (c == 'B' && i < 7) || (c == 'R' && i >= 7):
			id |= 1
		case (c == 'F' && i < 7) || (c == 'L' && i >= 7):
		default:
			return 0, fmt.Errorf("boarding pass %q: unexpected %q at %d", code, c, i)
		}
	}
	return id, nil
}

// MissingSeat is the only ID absent between the lowest and highest seats.
func MissingSeat(ids []int) (int, error) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+2 {
			return sorted[i] - 1, nil
		}
	}
	return 0, aoc.ErrNoSolution
}

// Solve finds the highest seat ID and the missing seat.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	ids := make([]int, 0, len(lines))
	highest := 0
	for _, line := range lines {
		id, err := SeatID(line)
		if err != nil {
			return aoc.Solution{}, err
		}
		ids = append(ids, id)
		if id > highest {
			highest = id
		}
	}
	missing, err := MissingSeat(ids)
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
	}
	return aoc.Solution{Part1: int64(highest), Part2: int64(missing)}, nil
}
