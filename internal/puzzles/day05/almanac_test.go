package day05

import (
	"context"
	"errors"
	"sort"
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

func TestParseAlmanacNamesSets(t *testing.T) {
	a, err := ParseAlmanac(example)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(a.Sets) != 7 {
		t.Fatalf("expected 7 map sets, got %d", len(a.Sets))
	}
	if a.Sets[0].Name != "seed-to-soil" {
		t.Fatalf("unexpected first set name %q", a.Sets[0].Name)
	}
	wantLocations := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range wantLocations {
		if got := a.Location(seed); got != want {
			t.Fatalf("location(%d) = %d want %d", seed, got, want)
		}
	}
}

func TestTranslateRangeSplits(t *testing.T) {
	set := MapSet{Mappings: []Mapping{
		{Dst: 100, Src: 10, Len: 5}, // 10..14 -> 100..104
		{Dst: 0, Src: 20, Len: 2},   // 20..21 -> 0..1
	}}
	got := set.TranslateRange(Range{Start: 8, Len: 16}) // 8..23
	sort.Slice(got, func(i, j int) bool { return got[i].Start < got[j].Start })
	want := []Range{
		{Start: 0, Len: 2},
		{Start: 8, Len: 2},
		{Start: 15, Len: 5},
		{Start: 22, Len: 2},
		{Start: 100, Len: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
	total := 0
	for _, r := range got {
		total += r.Len
	}
	if total != 16 {
		t.Fatalf("range split lost values: %d", total)
	}
}

func TestTranslateRangeMatchesPointwise(t *testing.T) {
	a, err := ParseAlmanac(example)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seeds := Range{Start: 40, Len: 70}
	lowest := -1
	for v := seeds.Start; v < seeds.End(); v++ {
		loc := a.Location(v)
		if lowest < 0 || loc < lowest {
			lowest = loc
		}
	}
	rangeLowest := -1
	for _, r := range a.LocationRanges(seeds) {
		if rangeLowest < 0 || r.Start < rangeLowest {
			rangeLowest = r.Start
		}
	}
	if lowest != rangeLowest {
		t.Fatalf("pointwise lowest %d != range lowest %d", lowest, rangeLowest)
	}
}

func TestMalformedAlmanac(t *testing.T) {
	cases := []string{
		"",
		"seedz: 1 2\n",
		"seeds: 1 2\n1 2 3\n",
		"seeds: 1 2\n\na map:\n1 2\n",
	}
	for _, in := range cases {
		if _, err := PartOne(in); !errors.Is(err, puzzles.ErrMalformedInput) {
			t.Fatalf("%q: expected ErrMalformedInput, got %v", in, err)
		}
	}
	if _, err := PartTwo("seeds: 1 2 3\n"); !errors.Is(err, puzzles.ErrMalformedInput) {
		t.Fatalf("expected odd seed list to fail, got %v", err)
	}
}
