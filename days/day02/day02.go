// Package day02 solves "Password Philosophy": check passwords against their policies.
package day02

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
)

var (
	policyLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Word", Pattern: `[^\s:\d-]+`},
		{Name: "Punct", Pattern: `[-:]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Database](
		participle.Lexer(policyLexer),
		participle.Elide("Whitespace"),
	)
)

// Database of passwords, one "1-3 a: abcde" entry per line.
type Database struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry is a password and the policy it was created under.
type Entry struct {
	Pos lexer.Position

	Low      int    `parser:"@Int \"-\""`
	High     int    `parser:"@Int"`
	Letter   string `parser:"@Word \":\""`
	Password string `parser:"@Word"`
}

// ValidCount reports whether the letter occurs between Low and High times.
func (e *Entry) ValidCount() bool {
	n := strings.Count(e.Password, e.Letter)
	return e.Low <= n && n <= e.High
}

// ValidPosition reports whether the letter is at exactly one of the 1-based positions Low and High.
func (e *Entry) ValidPosition() bool {
	return e.at(e.Low) != e.at(e.High)
}

func (e *Entry) at(position int) bool {
	return position >= 1 && position <= len(e.Password) && strings.HasPrefix(e.Password[position-1:], e.Letter)
}

func init() { aoc.Register(2, Solve) }

// Parse a password database.
func Parse(r io.Reader) (*Database, error) {
	return parser.Parse("", r)
}

// Solve counts the valid passwords under both policy interpretations.
func Solve(r io.Reader) (aoc.Solution, error) {
	db, err := Parse(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(db.Count((*Entry).ValidCount)), Part2: int64(db.Count((*Entry).ValidPosition))}, nil
}

// Count entries satisfying valid.
func (d *Database) Count(valid func(*Entry) bool) int {
	count := 0
	for _, entry := range d.Entries {
		if valid(entry) {
			count++
		}
	}
	return count
}
