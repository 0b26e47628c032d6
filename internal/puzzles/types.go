package puzzles

import (
	"context"
	"fmt"
	"strings"
)

// Part selects which half of a day's puzzle to solve.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func (p Part) String() string {
	return fmt.Sprintf("part%d", int(p))
}

// Valid reports whether p names an existing puzzle half.
func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

// ParsePart accepts "1", "2", "one", "two", "part1" and "part2".
func ParsePart(raw string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "one", "part1", "p1":
		return PartOne, nil
	case "2", "two", "part2", "p2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPart, raw)
	}
}

// Metadata is the contract for puzzle identity and display data.
type Metadata struct {
	ID          string `json:"id"`
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Example is a published sample input with its known answer.
type Example struct {
	Name  string `json:"name"`
	Input string `json:"-"`
	Want  int    `json:"want"`
}

// PartSpec describes one solvable half of a puzzle.
type PartSpec struct {
	Part        Part     `json:"part"`
	Description string   `json:"description"`
	Example     *Example `json:"example,omitempty"`
}

// Solver is the execution boundary every day package implements.
type Solver interface {
	Metadata() Metadata
	Parts() []PartSpec
	Solve(ctx context.Context, part Part, input string) (int, error)
}

// InputSource yields the puzzle input for a day.
type InputSource interface {
	Load(ctx context.Context, day int) (string, error)
}
