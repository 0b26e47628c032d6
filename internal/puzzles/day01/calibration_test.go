package day01

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

func TestOverlappingWords(t *testing.T) {
	cases := map[string]int{
		"eightwo":     82,
		"oneight":     18,
		"7":           77,
		"xtwone3four": 24,
		"nineight\r":  98,
	}
	for line, want := range cases {
		got, err := PartTwo(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if got != want {
			t.Fatalf("%q: got %d want %d", line, got, want)
		}
	}
}

func TestPartOneIgnoresWords(t *testing.T) {
	got, err := PartOne("one2three4five\n")
	if err != nil {
		t.Fatalf("part one: %v", err)
	}
	if got != 24 {
		t.Fatalf("got %d want 24", got)
	}
}

func TestLineWithoutDigitFails(t *testing.T) {
	_, err := PartOne("12\nabc\n")
	if !errors.Is(err, puzzles.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestSolveRejectsUnknownPart(t *testing.T) {
	if _, err := NewSolver().Solve(context.Background(), puzzles.Part(3), "1"); !errors.Is(err, puzzles.ErrInvalidPart) {
		t.Fatalf("expected ErrInvalidPart, got %v", err)
	}
}
