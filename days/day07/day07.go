// Package day07 solves "Handy Haversacks": walk the graph of bag containment rules.
package day07

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/aocgo/aoc2020"
)

// Target bag colour.
const Target = "shiny gold"

var (
	ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Word", Pattern: `[a-z]+`},
		{Name: "Punct", Pattern: `[,.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	parser = participle.MustBuild[Regulations](
		participle.Lexer(ruleLexer),
		participle.Elide("Whitespace"),
	)
)

// Regulations for every bag colour.
type Regulations struct {
	Rules []*Rule `parser:"@@*"`
}

// Rule such as "light red bags contain 1 bright white bag, 2 muted yellow bags."
type Rule struct {
	Pos lexer.Position

	Colour   Colour     `parser:"@@ \"bags\" \"contain\""`
	Contents []*Content `parser:"( \"no\" \"other\" \"bags\" | @@ ( \",\" @@ )* ) \".\""`
}

// Content of a bag.
type Content struct {
	Count  int    `parser:"@Int"`
	Colour Colour `parser:"@@ ( \"bags\" | \"bag\" )"`
}

// Colour of a bag, always an adjective and a colour name.
type Colour struct {
	Shade string `parser:"@Word"`
	Name  string `parser:"@Word"`
}

func (c Colour) String() string { return c.Shade + " " + c.Name }

// Graph of bag colour to the count of each colour it directly contains.
type Graph map[string]map[string]int

func init() { aoc.Register(7, Solve) }

// Parse regulations into a Graph.
func Parse(r io.Reader) (Graph, error) {
	regulations, err := parser.Parse("", r)
	if err != nil {
		return nil, err
	}
	graph := Graph{}
	for _, rule := range regulations.Rules {
		outer := rule.Colour.String()
		if _, ok := graph[outer]; ok {
			return nil, fmt.Errorf("%s: bag %q has more than one rule", rule.Pos, outer)
		}
		contents := map[string]int{}
		for _, content := range rule.Contents {
			contents[content.Colour.String()] += content.Count
		}
		graph[outer] = contents
	}
	return graph, nil
}

// Containers counts the colours that eventually contain target.
func (g Graph) Containers(target string) int {
	parents := map[string][]string{}
	for outer, contents := range g {
		for inner := range contents {
			parents[inner] = append(parents[inner], outer)
		}
	}
	seen := map[string]bool{}
	queue := []string{target}
	for len(queue) > 0 {
		colour := queue[0]
		queue = queue[1:]
		for _, parent := range parents[colour] {
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return len(seen)
}

// Inside counts the bags contained by one bag of the given colour.
func (g Graph) Inside(colour string) (int, error) {
	return g.inside(colour, map[string]int{}, map[string]bool{})
}

func (g Graph) inside(colour string, memo map[string]int, active map[string]bool) (int, error) {
	if n, ok := memo[colour]; ok {
		return n, nil
	}
	if active[colour] {
		return 0, fmt.Errorf("bag %q contains itself", colour)
	}
	active[colour] = true
	defer delete(active, colour)
	total := 0
	for inner, count := range g[colour] {
		n, err := g.inside(inner, memo, active)
		if err != nil {
			return 0, err
		}
		total += count * (1 + n)
	}
	memo[colour] = total
	return total, nil
}

// Solve counts the bags that can hold a shiny gold bag, and the bags inside it.
func Solve(r io.Reader) (aoc.Solution, error) {
	graph, err := Parse(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	inside, err := graph.Inside(Target)
	if err != nil {
		return aoc.Solution{}, err
	}
	return aoc.Solution{Part1: int64(graph.Containers(Target)), Part2: int64(inside)}, nil
}
