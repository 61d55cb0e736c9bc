// Package day10 solves "Adapter Array": chain joltage adapters.
package day10

import (
	"fmt"
	"io"
	"sort"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// MaxStep is the largest joltage difference an adapter accepts.
const MaxStep = 3

func init() { aoc.Register(10, Solve) }

// Chain sorts the adapters and adds the outlet (0) and the device (highest+3).
func Chain(adapters []int) ([]int, error) {
	chain := append([]int{0}, adapters...)
	sort.Ints(chain)
	chain = append(chain, chain[len(chain)-1]+MaxStep)
	for i := 1; i < len(chain); i++ {
		if step := chain[i] - chain[i-1]; step < 1 || step > MaxStep {
			return nil, fmt.Errorf("can't connect %d jolts to %d jolts", chain[i-1], chain[i])
		}
	}
	return chain, nil
}

// Differences multiplies the number of 1-jolt steps by the number of 3-jolt steps.
func Differences(chain []int) int {
	counts := map[int]int{}
	for i := 1; i < len(chain); i++ {
		counts[chain[i]-chain[i-1]]++
	}
	return counts[1] * counts[3]
}

// Arrangements counts the distinct subsets of the chain that still connect outlet to device.
func Arrangements(chain []int) int64 {
	ways := map[int]int64{0: 1}
	for _, jolts := range chain[1:] {
		for step := 1; step <= MaxStep; step++ {
			ways[jolts] += ways[jolts-step]
		}
	}
	return ways[chain[len(chain)-1]]
}

// Solve chains every adapter.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	adapters, err := input.Ints(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	chain, err := Chain(adapters)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(Differences(chain)), Part2: Arrangements(chain)}, nil
}
