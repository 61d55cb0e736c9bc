// Package input reads and tokenises puzzle inputs.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmpty is returned when an input has no content.
var ErrEmpty = errors.New("empty input")

// Lines reads all lines from r without line terminators. Trailing blank lines are dropped.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	return lines, nil
}

// Groups splits lines into runs separated by blank lines.
func Groups(lines []string) [][]string {
	groups := [][]string{}
	current := []string{}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = []string{}
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// Sections splits lines at the first blank line.
//
// The second section is empty if there is no blank line.
func Sections(lines []string) (head, tail []string) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return lines[:i], lines[i+1:]
		}
	}
	return lines, nil
}

// Ints parses one integer per line.
func Ints(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// IntList parses a list of integers separated by sep, eg. "0,3,6".
func IntList(s string, sep string) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(s), sep)
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// SplitAny splits s around any run of the characters in delims, dropping empty fields.
func SplitAny(s string, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// IsNumber reports whether s is an optionally signed decimal integer.
func IsNumber(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
