package day09

import (
	"fmt"
	"slices"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

func allEqual(seq []int) bool {
	for _, v := range seq[1:] {
		if v != seq[0] {
			return false
		}
	}
	return true
}

// Next extrapolates one value past the end of seq. seq must be non-empty.
func Next(seq []int) int {
	if allEqual(seq) {
		return seq[len(seq)-1]
	}
	diffs := make([]int, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		diffs[i-1] = seq[i] - seq[i-1]
	}
	return seq[len(seq)-1] + Next(diffs)
}

// Previous extrapolates one value before the start of seq.
func Previous(seq []int) int {
	rev := slices.Clone(seq)
	slices.Reverse(rev)
	return Next(rev)
}

func parseHistories(input string) ([][]int, error) {
	lines := parse.NonEmptyLines(input)
	out := make([][]int, 0, len(lines))
	for i, line := range lines {
		seq, err := parse.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", puzzles.ErrMalformedInput, i+1, err)
		}
		if len(seq) == 0 {
			return nil, fmt.Errorf("%w: line %d: empty history", puzzles.ErrMalformedInput, i+1)
		}
		out = append(out, seq)
	}
	return out, nil
}

func sumOf(input string, extrapolate func([]int) int) (int, error) {
	histories, err := parseHistories(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, h := range histories {
		total += extrapolate(h)
	}
	return total, nil
}

func PartOne(input string) (int, error) {
	return sumOf(input, Next)
}

func PartTwo(input string) (int, error) {
	return sumOf(input, Previous)
}
