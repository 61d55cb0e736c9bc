// Package day04 solves "Passport Processing": validate passport fields.
package day04

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/aocgo/aoc2020"
	"github.com/aocgo/aoc2020/input"
)

// Passport fields keyed by name. "cid" is optional.
type Passport map[string]string

// A Check validates the value of a field.
type Check func(value string) bool

var (
	hairColour = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportID = regexp.MustCompile(`^[0-9]{9}$`)
	height     = regexp.MustCompile(`^(\d+)(cm|in)$`)
	eyeColours = map[string]bool{"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true}
)

// Required fields and their checks, in the order they are tested.
var Required = []struct {
	Field string
	Check Check
}{
	{"byr", yearBetween(1920, 2002)},
	{"iyr", yearBetween(2010, 2020)},
	{"eyr", yearBetween(2020, 2030)},
	{"hgt", validHeight},
	{"hcl", hairColour.MatchString},
	{"ecl", func(v string) bool { return eyeColours[v] }},
	{"pid", passportID.MatchString},
}

func init() { aoc.Register(4, Solve) }

// Parse blank line separated passports of space separated "key:value" pairs.
func Parse(lines []string) ([]Passport, error) {
	passports := []Passport{}
	for _, group := range input.Groups(lines) {
		passport := Passport{}
		for _, line := range group {
			for _, field := range strings.Fields(line) {
				key, value, ok := strings.Cut(field, ":")
				if !ok {
					return nil, fmt.Errorf("passport %d: field %q has no value", len(passports)+1, field)
				}
				passport[key] = value
			}
		}
		passports = append(passports, passport)
	}
	return passports, nil
}

// Complete reports whether every required field is present.
func (p Passport) Complete() bool {
	for _, required := range Required {
		if _, ok := p[required.Field]; !ok {
			return false
		}
	}
	return true
}

// Valid reports whether every required field is present and valid.
func (p Passport) Valid() bool {
	for _, required := range Required {
		value, ok := p[required.Field]
		if !ok || !required.Check(value) {
			return false
		}
	}
	return true
}

func yearBetween(low, high int) Check {
	return func(value string) bool {
		if len(value) != 4 {
			return false
		}
		year, err := strconv.Atoi(value)
		return err == nil && low <= year && year <= high
	}
}

func validHeight(value string) bool {
	m := height.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return 150 <= n && n <= 193
	}
	return 59 <= n && n <= 76
}

// Solve counts complete passports and valid passports.
func Solve(r io.Reader) (aoc.Solution, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return aoc.Solution{}, err
	}
	passports, err := Parse(lines)
	if err != nil {
		return aoc.Solution{}, err
	}
	solution := aoc.Solution{}
	for _, passport := range passports {
		if passport.Complete() {
			solution.Part1++
		}
		if passport.Valid() {
			solution.Part2++
		}
	}
	return solution, nil
}
