package day05

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the seed almanac puzzle.
	SolverID = "day05"
)

//go:embed example.txt
var example string

// Solver walks seeds through the almanac's chain of range maps.
type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         5,
		Title:       "If You Give A Seed A Fertilizer",
		Description: "Remap seed numbers and seed ranges through the almanac to the lowest location",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "lowest location of the listed seeds",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 35},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "lowest location when seeds are (start, length) ranges",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 46},
		},
	}
}

func (Solver) Solve(ctx context.Context, part puzzles.Part, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch part {
	case puzzles.PartOne:
		return PartOne(input)
	case puzzles.PartTwo:
		return PartTwo(input)
	default:
		return 0, fmt.Errorf("%w: %d", puzzles.ErrInvalidPart, int(part))
	}
}
