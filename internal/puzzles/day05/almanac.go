package day05

import (
	"fmt"
	"math"
	"strings"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Range is a half-open interval [Start, Start+Len).
type Range struct {
	Start int
	Len   int
}

func (r Range) End() int {
	return r.Start + r.Len
}

// Mapping shifts source values [Src, Src+Len) onto [Dst, Dst+Len).
type Mapping struct {
	Dst int
	Src int
	Len int
}

func (m Mapping) contains(v int) bool {
	return v >= m.Src && v < m.Src+m.Len
}

// MapSet is one "x-to-y map" block. Values no mapping covers pass through.
type MapSet struct {
	Name     string
	Mappings []Mapping
}

// Translate maps v through the first mapping that covers it.
func (s MapSet) Translate(v int) int {
	for _, m := range s.Mappings {
		if m.contains(v) {
			return m.Dst + (v - m.Src)
		}
	}
	return v
}

// TranslateRange maps r through the set, splitting it wherever mapping
// boundaries fall inside it. Output ranges cover exactly r.Len values.
func (s MapSet) TranslateRange(r Range) []Range {
	var out []Range
	pending := []Range{r}
	for _, m := range s.Mappings {
		var next []Range
		for _, p := range pending {
			lo := max(p.Start, m.Src)
			hi := min(p.End(), m.Src+m.Len)
			if lo >= hi {
				next = append(next, p)
				continue
			}
			out = append(out, Range{Start: m.Dst + (lo - m.Src), Len: hi - lo})
			if p.Start < lo {
				next = append(next, Range{Start: p.Start, Len: lo - p.Start})
			}
			if hi < p.End() {
				next = append(next, Range{Start: hi, Len: p.End() - hi})
			}
		}
		pending = next
		if len(pending) == 0 {
			break
		}
	}
	return append(out, pending...)
}

// Almanac is the seed list plus the ordered chain of map sets.
type Almanac struct {
	Seeds []int
	Sets  []MapSet
}

// Location follows one seed through every map set.
func (a Almanac) Location(seed int) int {
	v := seed
	for _, s := range a.Sets {
		v = s.Translate(v)
	}
	return v
}

// LocationRanges follows a whole seed range through every map set.
func (a Almanac) LocationRanges(seeds Range) []Range {
	ranges := []Range{seeds}
	for _, s := range a.Sets {
		var next []Range
		for _, r := range ranges {
			next = append(next, s.TranslateRange(r)...)
		}
		ranges = next
	}
	return ranges
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: seed ranges need pairs, got %d values", puzzles.ErrMalformedInput, len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Range{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

func ParseAlmanac(input string) (Almanac, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return Almanac{}, fmt.Errorf("%w: empty almanac", puzzles.ErrMalformedInput)
	}
	seedText, ok := strings.CutPrefix(strings.TrimSpace(lines[0]), "seeds:")
	if !ok {
		return Almanac{}, fmt.Errorf("%w: line 1: missing seeds header", puzzles.ErrMalformedInput)
	}
	seeds, err := parse.Ints(seedText)
	if err != nil {
		return Almanac{}, fmt.Errorf("%w: line 1: %v", puzzles.ErrMalformedInput, err)
	}

	a := Almanac{Seeds: seeds}
	for i, raw := range lines[1:] {
		lineNo := i + 2
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, ":"):
			name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(line, ":"), "map"))
			a.Sets = append(a.Sets, MapSet{Name: name})
		default:
			if len(a.Sets) == 0 {
				return Almanac{}, fmt.Errorf("%w: line %d: mapping before any map header", puzzles.ErrMalformedInput, lineNo)
			}
			nums, err := parse.Ints(line)
			if err != nil || len(nums) != 3 {
				return Almanac{}, fmt.Errorf("%w: line %d: want 'dst src len', got %q", puzzles.ErrMalformedInput, lineNo, line)
			}
			if nums[2] < 0 {
				return Almanac{}, fmt.Errorf("%w: line %d: negative length", puzzles.ErrMalformedInput, lineNo)
			}
			last := &a.Sets[len(a.Sets)-1]
			last.Mappings = append(last.Mappings, Mapping{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
	}
	return a, nil
}

func PartOne(input string) (int, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", puzzles.ErrMalformedInput)
	}
	lowest := math.MaxInt
	for _, seed := range a.Seeds {
		lowest = min(lowest, a.Location(seed))
	}
	return lowest, nil
}

func PartTwo(input string) (int, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	seedRanges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	lowest := math.MaxInt
	found := false
	for _, sr := range seedRanges {
		if sr.Len <= 0 {
			continue
		}
		for _, r := range a.LocationRanges(sr) {
			lowest = min(lowest, r.Start)
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no non-empty seed ranges", puzzles.ErrMalformedInput)
	}
	return lowest, nil
}
