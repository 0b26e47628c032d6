package day02

import (
	"context"
	"errors"
	"testing"

	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func TestExamples(t *testing.T) {
	testlog.Start(t)
	s := NewSolver()
	for _, spec := range s.Parts() {
		got, err := s.Solve(context.Background(), spec.Part, spec.Example.Input)
		if err != nil {
			t.Fatalf("%s: %v", spec.Part, err)
		}
		if got != spec.Example.Want {
			t.Fatalf("%s: got %d want %d", spec.Part, got, spec.Example.Want)
		}
	}
}

func TestParseGame(t *testing.T) {
	g, err := parseGame("Game 12: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Game{ID: 12, Reveals: []Cubes{
		{Red: 4, Blue: 3},
		{Red: 1, Green: 2, Blue: 6},
		{Green: 2},
	}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("game mismatch (-want +got):\n%s", diff)
	}
	if got := g.Minimum(); got != (Cubes{Red: 4, Green: 2, Blue: 6}) {
		t.Fatalf("unexpected minimum: %+v", got)
	}
}

func TestCustomBag(t *testing.T) {
	s := NewSolverWithBag(Cubes{Red: 20, Green: 13, Blue: 15})
	got, err := s.Solve(context.Background(), puzzles.PartOne, example)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	// game 3 needs 20 red and game 4 needs 15 blue; both fit this bag
	if got != 15 {
		t.Fatalf("got %d want 15", got)
	}
}

func TestMissingColourHasZeroPower(t *testing.T) {
	got, err := PartTwo("Game 1: 3 blue, 4 red\n")
	if err != nil {
		t.Fatalf("part two: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d want 0", got)
	}
}

func TestMalformedGames(t *testing.T) {
	for _, in := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: three blue",
		"Game 1: 3 blue red",
	} {
		if _, err := PartOne(in); !errors.Is(err, puzzles.ErrMalformedInput) {
			t.Fatalf("%q: expected ErrMalformedInput, got %v", in, err)
		}
	}
}
