package day06

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const SolverID = "day06"

//go:embed example.txt
var example string

type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         6,
		Title:       "Wait For It",
		Description: "Count button hold times that beat each boat race record",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "product of winning hold counts over all races",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 288},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "winning hold count for the single race formed by joining the digits",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 71503},
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
