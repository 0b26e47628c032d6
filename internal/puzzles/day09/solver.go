package day09

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const SolverID = "day09"

//go:embed example.txt
var example string

type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         9,
		Title:       "Mirage Maintenance",
		Description: "Extrapolate sensor histories with repeated difference sequences",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "sum of next values",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 114},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "sum of previous values",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 2},
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
