package day04

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

func TestPoints(t *testing.T) {
	cases := []struct {
		card Card
		want int
	}{
		{Card{Winning: []int{1, 2}, Have: []int{3, 4}}, 0},
		{Card{Winning: []int{1, 2}, Have: []int{2}}, 1},
		{Card{Winning: []int{1, 2, 3, 4}, Have: []int{4, 3, 2, 1}}, 8},
	}
	for _, tc := range cases {
		if got := tc.card.Points(); got != tc.want {
			t.Fatalf("points for %+v: got %d want %d", tc.card, got, tc.want)
		}
	}
}

func TestCopiesStopAtTableEnd(t *testing.T) {
	in := "Card 1: 1 2 3 | 1 2 3\nCard 2: 9 | 8\n"
	got, err := PartTwo(in)
	if err != nil {
		t.Fatalf("part two: %v", err)
	}
	// card 1 wins 3 copies but only card 2 exists
	if got != 3 {
		t.Fatalf("got %d want 3", got)
	}
}

func TestMalformedCards(t *testing.T) {
	for _, in := range []string{"Card 1 1 2 | 3", "Card 1: 1 2 3", "Card 1: 1 x | 3"} {
		if _, err := PartOne(in); !errors.Is(err, puzzles.ErrMalformedInput) {
			t.Fatalf("%q: expected ErrMalformedInput, got %v", in, err)
		}
	}
}
