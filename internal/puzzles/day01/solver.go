package day01

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the trebuchet calibration puzzle.
	SolverID = "day01"
)

var (
	//go:embed example1.txt
	exampleOne string
	//go:embed example2.txt
	exampleTwo string
)

// Solver sums calibration values hidden in each document line.
type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

// Metadata returns stable puzzle identity details.
func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         1,
		Title:       "Trebuchet?!",
		Description: "Sum the two-digit calibration value formed by the first and last digit of each line",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "numeric digits only",
			Example:     &puzzles.Example{Name: "example1", Input: exampleOne, Want: 142},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "spelled-out digits count too",
			Example:     &puzzles.Example{Name: "example2", Input: exampleTwo, Want: 281},
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
