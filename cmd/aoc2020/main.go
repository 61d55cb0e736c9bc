package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/aocgo/aoc2020/rules"

	_ "github.com/aocgo/aoc2020/days/day01"
	_ "github.com/aocgo/aoc2020/days/day02"
	_ "github.com/aocgo/aoc2020/days/day03"
	_ "github.com/aocgo/aoc2020/days/day04"
	_ "github.com/aocgo/aoc2020/days/day05"
	_ "github.com/aocgo/aoc2020/days/day06"
	_ "github.com/aocgo/aoc2020/days/day07"
	_ "github.com/aocgo/aoc2020/days/day08"
	_ "github.com/aocgo/aoc2020/days/day09"
	_ "github.com/aocgo/aoc2020/days/day10"
	_ "github.com/aocgo/aoc2020/days/day11"
	_ "github.com/aocgo/aoc2020/days/day12"
	_ "github.com/aocgo/aoc2020/days/day13"
	_ "github.com/aocgo/aoc2020/days/day14"
	_ "github.com/aocgo/aoc2020/days/day15"
	_ "github.com/aocgo/aoc2020/days/day16"
	_ "github.com/aocgo/aoc2020/days/day17"
	_ "github.com/aocgo/aoc2020/days/day18"
	_ "github.com/aocgo/aoc2020/days/day19"
)

var version string = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Format   string `enum:"text,json,yaml" default:"text" env:"AOC_FORMAT" help:"Output format (${enum})."`
	LogLevel string `enum:"debug,info,warn,error" default:"info" env:"AOC_LOG_LEVEL" help:"Log level (${enum})."`
}

// CLI is the command line of aoc2020.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Print the version and exit."`

	Solve solveCmd `cmd:"" help:"Solve a day's puzzle."`
	Rules rulesCmd `cmd:"" help:"Expand a rule table into a regular expression."`
	List  listCmd  `cmd:"" help:"List the days that have a solver."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("aoc2020"),
		kong.Description(`Advent of Code 2020 solvers.`),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"root":    rules.DefaultRoot,
			"depth":   strconv.Itoa(rules.DefaultDepth),
		},
	}, options...)
	return kong.New(cli, options...)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func main() {
	// Must happen before parsing so that .env can supply AOC_* flags.
	envErr := godotenv.Load()

	cli := &CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(os.Stderr, cli.LogLevel)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn().Err(envErr).Msg("could not load .env")
	}
	err = kctx.Run(&Context{
		Format: cli.Format,
		Log:    logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	kctx.FatalIfErrorf(err)
}
