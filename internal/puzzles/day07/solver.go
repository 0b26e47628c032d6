package day07

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the camel cards puzzle.
	SolverID = "day07"
)

//go:embed example.txt
var example string

type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         7,
		Title:       "Camel Cards",
		Description: "Rank poker-like hands and total each bid multiplied by its rank",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "total winnings with standard card order",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 6440},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "total winnings with J as a weakest-card joker",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 5905},
		},
	}
}

func (Solver) Solve(ctx context.Context, part puzzles.Part, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch part {
	case puzzles.PartOne:
		return Winnings(input, Standard)
	case puzzles.PartTwo:
		return Winnings(input, Jokers)
	default:
		return 0, fmt.Errorf("%w: %d", puzzles.ErrInvalidPart, int(part))
	}
}
