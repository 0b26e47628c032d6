package day08

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

func TestShortExample(t *testing.T) {
	in := "RL\n\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)\nCCC = (ZZZ, GGG)\nDDD = (DDD, DDD)\nEEE = (EEE, EEE)\nGGG = (GGG, GGG)\nZZZ = (ZZZ, ZZZ)\n"
	got, err := PartOne(in)
	if err != nil {
		t.Fatalf("part one: %v", err)
	}
	if got != 2 {
		t.Fatalf("got %d want 2", got)
	}
}

func TestStartsSorted(t *testing.T) {
	n, err := ParseNetwork(exampleTwo)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"11A", "22A"}, n.Starts("A")); diff != "" {
		t.Fatalf("starts mismatch (-want +got):\n%s", diff)
	}
}

func TestUnreachableDestination(t *testing.T) {
	in := "L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n"
	if _, err := PartOne(in); !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestUnknownNode(t *testing.T) {
	in := "L\n\nAAA = (QQQ, QQQ)\n"
	if _, err := PartOne(in); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	if _, err := PartOne("L\n\nBBB = (BBB, BBB)\n"); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected missing start to be ErrUnknownNode, got %v", err)
	}
}

func TestMalformedNetwork(t *testing.T) {
	cases := []string{
		"",
		"LXR\n\nAAA = (AAA, AAA)\n",
		"L\n\nAAA (AAA, AAA)\n",
		"L\n\nAAA = (AAA)\n",
		"L\n\nAAA = (AAA, AAA)\nAAA = (AAA, AAA)\n",
	}
	for _, in := range cases {
		if _, err := PartOne(in); !errors.Is(err, puzzles.ErrMalformedInput) {
			t.Fatalf("%q: expected ErrMalformedInput, got %v", in, err)
		}
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSolver().Solve(ctx, puzzles.PartTwo, exampleTwo); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
