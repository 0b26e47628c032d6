// Package parse holds the small text helpers every puzzle input goes through.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput = errors.New("parse: empty input")
	ErrRaggedGrid = errors.New("parse: ragged grid")
)

// Lines splits input on newlines, drops carriage returns and trims trailing
// blank lines. Interior blank lines are kept.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NonEmptyLines is Lines without any blank lines.
func NonEmptyLines(input string) []string {
	lines := Lines(input)
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Groups splits lines into chunks, using every line for which isSep reports
// true as a boundary. Separator lines are dropped and empty chunks are never
// returned.
func Groups(lines []string, isSep func(string) bool) [][]string {
	var groups [][]string
	var current []string
	for _, line := range lines {
		if isSep(line) {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
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

// Ints parses whitespace separated integers.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse int %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Grid returns the input as byte rows and rejects rows of differing width.
func Grid(input string) ([][]byte, error) {
	lines := NonEmptyLines(input)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	width := len(lines[0])
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrRaggedGrid, i+1, len(line), width)
		}
		rows[i] = []byte(line)
	}
	return rows, nil
}

// Cut splits s around the first sep and trims both halves.
func Cut(s, sep string) (string, string, bool) {
	before, after, ok := strings.Cut(s, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), ok
}
