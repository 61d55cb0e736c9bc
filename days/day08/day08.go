// Package day08 solves "Handheld Halting": run a boot program and repair its infinite loop.
package day08

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
)

// Operations.
const (
	Acc = "acc"
	Jmp = "jmp"
	Nop = "nop"
)

var (
	programLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Op", Pattern: `[a-z]+`},
		{Name: "Int", Pattern: `[-+]\d+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Program](
		participle.Lexer(programLexer),
		participle.Elide("Whitespace"),
	)
)

// Program of boot code instructions.
type Program struct {
	Instructions []*Instruction `parser:"@@*"`
}

// Instruction such as "jmp -4".
type Instruction struct {
	Pos lexer.Position

	Op  string `parser:"@(\"acc\" | \"jmp\" | \"nop\")"`
	Arg Arg    `parser:"@Int"`
}

// Arg is a signed decimal argument. It is always written with a sign, eg. "+0".
type Arg int

// Capture implements participle.Capture.
func (a *Arg) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*a = Arg(n)
	return nil
}

func init() { aoc.Register(8, Solve) }

// Parse a program.
func Parse(r io.Reader) (*Program, error) {
	return parser.Parse("", r)
}

// Run the program until it either executes an instruction twice or steps past its end.
//
// It returns the accumulator and whether the program terminated normally.
func (p *Program) Run() (acc int, terminated bool) {
	executed := make([]bool, len(p.Instructions))
	pc := 0
	for pc >= 0 && pc < len(p.Instructions) {
		if executed[pc] {
			return acc, false
		}
		executed[pc] = true
		instruction := p.Instructions[pc]
		switch instruction.Op {
		case Acc:
			acc += int(instruction.Arg)
		case Jmp:
			pc += int(instruction.Arg) - 1
		}
		pc++
	}
	return acc, pc == len(p.Instructions)
}

// Repair finds the single jmp/nop swap that makes the program terminate and returns the final accumulator.
func (p *Program) Repair() (int, error) {
	for i, instruction := range p.Instructions {
		var swapped string
		switch instruction.Op {
		case Jmp:
			swapped = Nop
		case Nop:
			swapped = Jmp
		default:
			continue
		}
		patched := &Program{Instructions: append([]*Instruction(nil), p.Instructions...)}
		patched.Instructions[i] = &Instruction{Pos: instruction.Pos, Op: swapped, Arg: instruction.Arg}
		if acc, terminated := patched.Run(); terminated {
			return acc, nil
		}
	}
	return 0, aoc.ErrNoSolution
}

// Solve returns the accumulator when the loop is detected, and after the program is repaired.
func Solve(r io.Reader) (aoc.Solution, error) {
	program, err := Parse(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	looped, terminated := program.Run()
	if terminated {
		return aoc.Solution{}, fmt.Errorf("part 1: program terminated without looping")
	}
	repaired, err := program.Repair()
	if err != nil {
		return aoc.Solution{}, fmt.Errorf("part 2: %w", err)
	}
	return aoc.Solution{Part1: int64(looped), Part2: int64(repaired)}, nil
}
