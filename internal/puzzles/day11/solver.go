package day11

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
)

const (
	// SolverID is the canonical identifier for the cosmic expansion puzzle.
	SolverID = "day11"
	// DefaultExpansion is the part two growth factor for empty rows and columns.
	DefaultExpansion = 1_000_000
)

//go:embed example.txt
var example string

// Solver sums galaxy distances after the universe expands.
type Solver struct {
	Expansion int
}

func NewSolver() Solver {
	return Solver{Expansion: DefaultExpansion}
}

// NewSolverWithExpansion overrides the part two growth factor.
func NewSolverWithExpansion(factor int) Solver {
	if factor < 1 {
		factor = DefaultExpansion
	}
	return Solver{Expansion: factor}
}

func (Solver) Metadata() puzzles.Metadata {
	return puzzles.Metadata{
		ID:          SolverID,
		Day:         11,
		Title:       "Cosmic Expansion",
		Description: "Sum shortest paths between galaxies once empty rows and columns expand",
	}
}

func (s Solver) Parts() []puzzles.PartSpec {
	two := &puzzles.Example{Name: "example", Input: example, Want: 82000210}
	if s.Expansion != DefaultExpansion {
		// the published answer only holds for the default factor
		two = nil
	}
	return []puzzles.PartSpec{
		{
			Part:        puzzles.PartOne,
			Description: "empty rows and columns double",
			Example:     &puzzles.Example{Name: "example", Input: example, Want: 374},
		},
		{
			Part:        puzzles.PartTwo,
			Description: fmt.Sprintf("empty rows and columns grow %dx", s.Expansion),
			Example:     two,
		},
	}
}

func (s Solver) Solve(ctx context.Context, part puzzles.Part, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch part {
	case puzzles.PartOne:
		return DistanceSum(input, 2)
	case puzzles.PartTwo:
		factor := s.Expansion
		if factor < 1 {
			factor = DefaultExpansion
		}
		return DistanceSum(input, factor)
	default:
		return 0, fmt.Errorf("%w: %d", puzzles.ErrInvalidPart, int(part))
	}
}
