package day09

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

func TestExtrapolation(t *testing.T) {
	cases := []struct {
		seq        []int
		next, prev int
	}{
		{[]int{5}, 5, 5},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{-2, -4, -6}, -8, 0},
		{[]int{1, 4, 9, 16}, 25, 0},
	}
	for _, tc := range cases {
		if got := Next(tc.seq); got != tc.next {
			t.Fatalf("Next(%v) = %d want %d", tc.seq, got, tc.next)
		}
		if got := Previous(tc.seq); got != tc.prev {
			t.Fatalf("Previous(%v) = %d want %d", tc.seq, got, tc.prev)
		}
	}
}

func TestPreviousLeavesInputIntact(t *testing.T) {
	seq := []int{1, 2, 3}
	_ = Previous(seq)
	if seq[0] != 1 || seq[2] != 3 {
		t.Fatalf("Previous mutated its input: %v", seq)
	}
}

func TestMalformedHistory(t *testing.T) {
	if _, err := PartOne("1 2 x\n"); !errors.Is(err, puzzles.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
