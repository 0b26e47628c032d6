package day07

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

func TestClassify(t *testing.T) {
	cases := []struct {
		cards string
		rules Rules
		want  Type
	}{
		{"AAAAA", Standard, FiveOfAKind},
		{"AA8AA", Standard, FourOfAKind},
		{"23332", Standard, FullHouse},
		{"TTT98", Standard, ThreeOfAKind},
		{"23432", Standard, TwoPair},
		{"A23A4", Standard, OnePair},
		{"23456", Standard, HighCard},
		{"JJJJJ", Jokers, FiveOfAKind},
		{"JJJJ2", Jokers, FiveOfAKind},
		{"QJJQ2", Jokers, FourOfAKind},
		{"2233J", Jokers, FullHouse},
		{"2345J", Jokers, OnePair},
		{"KTJJT", Jokers, FourOfAKind},
		{"KTJJT", Standard, TwoPair},
	}
	for _, tc := range cases {
		if got := classify(tc.cards, tc.rules); got != tc.want {
			t.Fatalf("classify(%q, %d) = %s want %s", tc.cards, tc.rules, got, tc.want)
		}
	}
}

func TestTieBreakUsesPlayOrder(t *testing.T) {
	a, _ := NewHand("33332", 1, Standard)
	b, _ := NewHand("2AAAA", 1, Standard)
	if !b.Less(a) {
		t.Fatalf("expected 2AAAA to be weaker than 33332")
	}
	j, _ := NewHand("JKKK2", 1, Jokers)
	q, _ := NewHand("QQQQ2", 1, Jokers)
	if !j.Less(q) {
		t.Fatalf("expected joker to be the weakest card in tie breaks")
	}
	if a.Less(a) {
		t.Fatalf("a hand must not be less than itself")
	}
}

func TestMalformedHands(t *testing.T) {
	for _, in := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K bid"} {
		if _, err := PartOne(in); !errors.Is(err, puzzles.ErrMalformedInput) {
			t.Fatalf("%q: expected ErrMalformedInput, got %v", in, err)
		}
	}
}
