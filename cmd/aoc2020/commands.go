package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/days/day19"
	"github.com/aocgo/aoc2020/input"
	"github.com/aocgo/aoc2020/rules"
)

// Context is passed to every command's Run method.
type Context struct {
	Format string
	Log    zerolog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// open the named file, or stdin if name is empty.
func (c *Context) open(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(c.Stdin), nil
	}
	return os.Open(name)
}

// print v in the configured format. Text output uses fmt's formatting of v.
func (c *Context) print(v interface{}) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(c.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case "yaml":
		enc := yaml.NewEncoder(c.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	default:
		_, err := fmt.Fprintln(c.Stdout, v)
		return err
	}
}

type solveCmd struct {
	Day   int    `arg:"" help:"Day to solve."`
	Input string `short:"i" type:"existingfile" env:"AOC_INPUT" help:"Puzzle input (read from stdin if omitted)."`
	Depth int    `default:"${depth}" env:"AOC_DEPTH" help:"Depth to unroll rule 11 to on day 19."`
}

func (c *solveCmd) Run(ctx *Context) error {
	solver, ok := aoc.Lookup(c.Day)
	if !ok {
		return fmt.Errorf("no solver for day %d, try \"list\"", c.Day)
	}
	if c.Day == 19 {
		solver = day19.Solver(c.Depth)
	}
	r, err := ctx.open(c.Input)
	if err != nil {
		return err
	}
	defer r.Close()

	start := time.Now()
	solution, err := solver(r)
	if err != nil {
		return fmt.Errorf("day %02d: %w", c.Day, err)
	}
	solution.Day = c.Day
	ctx.Log.Info().Int("day", c.Day).Dur("elapsed", time.Since(start)).Msg("solved")
	for _, warning := range solution.Warnings {
		ctx.Log.Warn().Int("day", c.Day).Msg(warning)
	}
	return ctx.print(solution)
}

type rulesCmd struct {
	Input   string `short:"i" type:"existingfile" help:"Rule table, optionally followed by a blank line and messages (read from stdin if omitted)."`
	Root    string `default:"${root}" help:"Rule to expand."`
	PartTwo bool   `help:"Replace rules 8 and 11 with their looping forms."`
	Depth   int    `default:"${depth}" env:"AOC_DEPTH" help:"Depth to unroll the balanced rule 11 to."`
	AST     bool   `name:"ast" help:"Print the expanded node tree."`
}

func (c *rulesCmd) Help() string {
	return `
Reads rules such as

    0: 4 1 5
    1: 2 3 | 3 2
    4: "a"

and prints the regular expression matching the root rule. If the rules are
followed by a blank line, the remaining lines are matched against it.
`
}

// ruleReport is the output of the rules command.
type ruleReport struct {
	Root       string `json:"root" yaml:"root"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	Discovered int    `json:"discovered" yaml:"discovered"`
	Expanded   int    `json:"expanded" yaml:"expanded"`
	Passes     int    `json:"passes" yaml:"passes"`
	Messages   int    `json:"messages" yaml:"messages"`
	Matched    int    `json:"matched" yaml:"matched"`
}

func (r ruleReport) String() string {
	return fmt.Sprintf("%s\n%d of %d messages match rule %s", r.Pattern, r.Matched, r.Messages, r.Root)
}

func (c *rulesCmd) Run(ctx *Context) error {
	r, err := ctx.open(c.Input)
	if err != nil {
		return err
	}
	defer r.Close()
	lines, err := input.Lines(r)
	if err != nil {
		return err
	}
	head, messages := input.Sections(lines)
	table, err := rules.ParseString(strings.Join(head, "\n"))
	if err != nil {
		return err
	}
	options := []rules.Option{}
	if c.PartTwo {
		options = append(options, rules.Overrides(rules.PartTwo(c.Depth)))
	}
	pattern, err := rules.Expand(table, c.Root, options...)
	if err != nil {
		return err
	}
	ctx.Log.Debug().
		Str("root", c.Root).
		Int("discovered", pattern.Stats.Discovered).
		Int("expanded", pattern.Stats.Expanded).
		Int("passes", pattern.Stats.Passes).
		Msg("expanded")
	if c.AST {
		fmt.Fprintln(ctx.Stdout, repr.String(pattern.Node, repr.Indent("  ")))
	}
	re, err := pattern.Compile()
	if err != nil {
		return err
	}
	report := ruleReport{
		Root:       c.Root,
		Pattern:    pattern.String(),
		Discovered: pattern.Stats.Discovered,
		Expanded:   pattern.Stats.Expanded,
		Passes:     pattern.Stats.Passes,
		Messages:   len(messages),
	}
	for _, msg := range messages {
		if re.MatchString(msg) {
			report.Matched++
		}
	}
	return ctx.print(report)
}

type listCmd struct{}

// dayList prints one day per line.
type dayList []int

func (d dayList) String() string {
	out := make([]string, len(d))
	for i, day := range d {
		out[i] = strconv.Itoa(day)
	}
	return strings.Join(out, "\n")
}

func (c *listCmd) Run(ctx *Context) error {
	return ctx.print(dayList(aoc.Days()))
}
