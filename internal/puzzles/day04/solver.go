package day04

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const SolverID = "day04"

//go:embed example.txt
var example string

type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         4,
		Title:       "Scratchcards",
		Description: "Score scratchcards by matching numbers and count the cascade of won copies",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "sum card points, doubling per match",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 13},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "count original and won copies of every card",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 30},
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
