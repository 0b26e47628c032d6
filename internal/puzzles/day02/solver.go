package day02

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the cube game puzzle.
	SolverID = "day02"
)

//go:embed example.txt
var example string

// Solver scores cube games against a bag of known contents.
type Solver struct {
	Bag Cubes
}

// NewSolver returns a solver using the default 12 red, 13 green, 14 blue bag.
func NewSolver() Solver {
	return Solver{Bag: DefaultBag()}
}

// NewSolverWithBag constructs a solver with an explicit bag.
func NewSolverWithBag(bag Cubes) Solver {
	return Solver{Bag: bag}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         2,
		Title:       "Cube Conundrum",
		Description: "Check which cube games fit the bag and total the minimum cube powers",
	}
}

func (s Solver) Parts() []puzzles.PartSpec {
	one := &puzzles.Example{Name: "example", Input: example, Want: 8}
	if s.Bag != DefaultBag() {
		one = nil
	}
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "sum ids of games possible with the bag",
			Example:     one,
		},
		{
			Part:        puzzles.PartTwo,
			Description: "sum the power of each game's minimum cube set",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 2286},
		},
	}
}

func (s Solver) Solve(ctx context.Context, part puzzles.Part, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch part {
	case puzzles.PartOne:
		return PartOneWithBag(input, s.Bag)
	case puzzles.PartTwo:
		return PartTwo(input)
	default:
		return 0, fmt.Errorf("%w: %d", puzzles.ErrInvalidPart, int(part))
	}
}
