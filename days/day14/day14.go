// Package day14 solves "Docking Data": a bitmask system writing to sparse memory.
package day14

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
)

// MaxFloating is the largest number of floating bits a mask may carry when
// decoding memory addresses, as each one doubles the number of writes.
const MaxFloating = 16

const width = 36

var (
	programLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Mask", Pattern: `[01X]{36}`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-z]+`},
		{Name: "Punct", Pattern: `[\[\]=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Program](
		participle.Lexer(programLexer),
		participle.Elide("Whitespace"),
	)
)

// Program of mask updates and memory writes.
type Program struct {
	Instructions []*Instruction `parser:"@@*"`
}

// Instruction is either "mask = ..." or "mem[8] = 11".
type Instruction struct {
	Pos lexer.Position

	Mask  *Mask  `parser:"  \"mask\" \"=\" @Mask"`
	Write *Write `parser:"| @@"`
}

// Write a value to an address.
type Write struct {
	Address uint64 `parser:"\"mem\" \"[\" @Int \"]\" \"=\""`
	Value   uint64 `parser:"@Int"`
}

// Mask over 36-bit values. Bits not set in Ones or Floating are zero in the mask.
type Mask struct {
	Ones     uint64
	Floating uint64
}

// Capture implements participle.Capture.
func (m *Mask) Capture(values []string) error {
	s := values[0]
	*m = Mask{}
	for i := 0; i < len(s); i++ {
		bit := uint64(1) << (len(s) - 1 - i)
		switch s[i] {
		case '1':
			m.Ones |= bit
		case 'X':
			m.Floating |= bit
		}
	}
	return nil
}

// Value applies the mask to a value: 0 and 1 overwrite, X leaves the bit unchanged.
func (m Mask) Value(v uint64) uint64 {
	return v&m.Floating | m.Ones
}

// Addresses calls fn with every address the mask decodes addr to: 1 sets the
// bit, 0 leaves it unchanged and X takes both values.
func (m Mask) Addresses(addr uint64, fn func(addr uint64)) {
	base := (addr | m.Ones) &^ m.Floating
	for sub := m.Floating; ; sub = (sub - 1) & m.Floating {
		fn(base | sub)
		if sub == 0 {
			return
		}
	}
}

func init() { aoc.Register(14, Solve) }

// Parse an initialization program.
func Parse(r io.Reader) (*Program, error) {
	return parser.Parse("", r)
}

// Part1 runs the program with masks applied to values and returns the sum of memory.
func (p *Program) Part1() (uint64, error) {
	return p.run(func(mem map[uint64]uint64, mask Mask, w *Write) error {
		mem[w.Address] = mask.Value(w.Value)
		return nil
	})
}

// Part2 runs the program with masks applied to addresses and returns the sum of memory.
func (p *Program) Part2() (uint64, error) {
	return p.run(func(mem map[uint64]uint64, mask Mask, w *Write) error {
		if n := bits.OnesCount64(mask.Floating); n > MaxFloating {
			return fmt.Errorf("mask has %d floating bits, at most %d supported", n, MaxFloating)
		}
		mask.Addresses(w.Address, func(addr uint64) { mem[addr] = w.Value })
		return nil
	})
}

func (p *Program) run(write func(mem map[uint64]uint64, mask Mask, w *Write) error) (uint64, error) {
	mem := map[uint64]uint64{}
	// Nothing is masked until the first mask instruction.
	mask := Mask{Floating: 1<<width - 1}
	for _, in := range p.Instructions {
		if in.Mask != nil {
			mask = *in.Mask
			continue
		}
		if err := write(mem, mask, in.Write); err != nil {
			return 0, fmt.Errorf("%s: %w", in.Pos, err)
		}
	}
	sum := uint64(0)
	for _, v := range mem {
		sum += v
	}
	return sum, nil
}

// Solve sums memory after running the program under both decoder versions.
func Solve(r io.Reader) (aoc.Solution, error) {
	program, err := Parse(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	part1, err := program.Part1()
	if err != nil {
		return aoc.Solution{}, err
	}
	part2, err := program.Part2()
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(part1), Part2: int64(part2)}, nil
}
