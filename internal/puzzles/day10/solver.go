package day10

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the pipe maze puzzle.
	SolverID = "day10"
)

var (
	//go:embed example1.txt
	exampleOne string
	//go:embed example2.txt
	exampleTwo string
)

// Solver walks the single pipe loop passing through S.
type Solver struct{}

func NewSolver() Solver {
	return Solver{}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         10,
		Title:       "Pipe Maze",
		Description: "Trace the pipe loop through S, its farthest point and the tiles it encloses",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "steps to the loop tile farthest from S",
			Example:     &puzzles.Example{Name: "example1", Input: exampleOne, Want: 4},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "tiles enclosed by the loop",
			Example:     &puzzles.Example{Name: "example2", Input: exampleTwo, Want: 4},
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
