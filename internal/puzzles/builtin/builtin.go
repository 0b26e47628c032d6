// Package builtin wires every shipped day solver into a registry.
package builtin

import (
	"fmt"

	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/puzzles/day01"
	"github.com/danmuck/aocctl/internal/puzzles/day02"
	"github.com/danmuck/aocctl/internal/puzzles/day03"
	"github.com/danmuck/aocctl/internal/puzzles/day04"
	"github.com/danmuck/aocctl/internal/puzzles/day05"
	"github.com/danmuck/aocctl/internal/puzzles/day06"
	"github.com/danmuck/aocctl/internal/puzzles/day07"
	"github.com/danmuck/aocctl/internal/puzzles/day08"
	"github.com/danmuck/aocctl/internal/puzzles/day09"
	"github.com/danmuck/aocctl/internal/puzzles/day10"
	"github.com/danmuck/aocctl/internal/puzzles/day11"
)

// Options carries the tunables individual solvers accept.
type Options struct {
	Bag       day02.Cubes
	Expansion int
}

func DefaultOptions() Options {
	return Options{
		Bag:       day02.DefaultBag(),
		Expansion: day11.DefaultExpansion,
	}
}

// NewRegistry registers days 1 through 11. Zero-valued options fall back to
// the published puzzle parameters.
func NewRegistry(opts Options) (*puzzles.Registry, error) {
	if opts.Bag == (day02.Cubes{}) {
		opts.Bag = day02.DefaultBag()
	}
	if opts.Expansion < 1 {
		opts.Expansion = day11.DefaultExpansion
	}

	registry := puzzles.NewRegistry()
	solvers := []puzzles.Solver{
		day01.NewSolver(),
		day02.NewSolverWithBag(opts.Bag),
		day03.NewSolver(),
		day04.NewSolver(),
		day05.NewSolver(),
		day06.NewSolver(),
		day07.NewSolver(),
		day08.NewSolver(),
		day09.NewSolver(),
		day10.NewSolver(),
		day11.NewSolverWithExpansion(opts.Expansion),
	}
	for _, s := range solvers {
		if err := registry.Register(s); err != nil {
			return nil, fmt.Errorf("register %s: %w", s.Metadata().ID, err)
		}
	}
	return registry, nil
}
