package day03

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the engine schematic puzzle.
	SolverID = "day03"
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
		Day:         3,
		Title:       "Gear Ratios",
		Description: "Find part numbers touching symbols in an engine schematic and the gears between them",
	}
}

func (Solver) Parts() []puzzles.PartSpec {
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "sum numbers adjacent to any symbol",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 4361},
		},
		{
			Part:        puzzles.PartTwo,
			Description: "sum gear ratios of '*' touching exactly two numbers",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 467835},
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
