package day08

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const SolverID = "day08"

var (
	//go:embed example1.txt
	exampleOne string
	//go:embed example2.txt
	exampleTwo string
)

type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         8,
		Title:       "Haunted Wasteland",
		Description: "Follow left/right instructions through a node network until the exit",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "steps from AAA to ZZZ",
			Example:     &puzzles.Example{Name: "example1", Input: exampleOne, Want: 6},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "steps until every ..A walker stands on a ..Z node",
			Example:     &puzzles.Example{Name: "example2", Input: exampleTwo, Want: 6},
		},
	}
}

func (Solver) Solve(ctx context.Context, part puzzles.Part, input string) (int, error) {
	switch part {
	case puzzles.PartOne:
		return PartOneContext(ctx, input)
	case puzzles.PartTwo:
		return PartTwoContext(ctx, input)
	default:
		return 0, fmt.Errorf("%w: %d", puzzles.ErrInvalidPart, int(part))
	}
}
