package day11

import (
	"context"
	"errors"
	"testing"

	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
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

func TestExpansionFactors(t *testing.T) {
	cases := map[int]int{
		1:   292,
		2:   374,
		10:  1030,
		100: 8410,
	}
	for factor, want := range cases {
		got, err := DistanceSum(example, factor)
		if err != nil {
			t.Fatalf("factor %d: %v", factor, err)
		}
		if got != want {
			t.Fatalf("factor %d: got %d want %d", factor, got, want)
		}
	}
}

func TestCustomExpansionDropsPublishedExample(t *testing.T) {
	s := NewSolverWithExpansion(10)
	parts := s.Parts()
	if parts[1].Example != nil {
		t.Fatalf("expected no part two example for a custom factor")
	}
	got, err := s.Solve(context.Background(), puzzles.PartTwo, example)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if got != 1030 {
		t.Fatalf("got %d want 1030", got)
	}
}

func TestMalformedUniverse(t *testing.T) {
	if _, err := PartOne("#.\n.x\n"); !errors.Is(err, puzzles.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if _, err := DistanceSum(example, 0); err == nil {
		t.Fatalf("expected factor 0 to be rejected")
	}
}
