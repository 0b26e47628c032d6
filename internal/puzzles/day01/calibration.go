package day01

import (
	"fmt"
	"strings"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

var digitWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

func PartOne(input string) (int, error) {
	return sumCalibration(input, false)
}

func PartTwo(input string) (int, error) {
	return sumCalibration(input, true)
}

func sumCalibration(input string, words bool) (int, error) {
	sum := 0
	for i, line := range parse.NonEmptyLines(input) {
		first, ok := firstDigit(line, words)
		if !ok {
			return 0, fmt.Errorf("%w: line %d has no digit", puzzles.ErrMalformedInput, i+1)
		}
		last, _ := lastDigit(line, words)
		sum += first*10 + last
	}
	return sum, nil
}

// digitAt reports the digit starting at line[i], if any. Spelled words may
// overlap, so "eightwo" yields 8 at 0 and 2 at 4.
func digitAt(line string, i int, words bool) (int, bool) {
	c := line[i]
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range digitWords {
		if strings.HasPrefix(line[i:], w) {
			return d, true
		}
	}
	return 0, false
}

func firstDigit(line string, words bool) (int, bool) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, words); ok {
			return d, true
		}
	}
	return 0, false
}

func lastDigit(line string, words bool) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			return d, true
		}
	}
	return 0, false
}
