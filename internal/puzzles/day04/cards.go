package day04

import (
	"fmt"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Card holds the winning numbers and the numbers scratched off.
type Card struct {
	Winning []int
	Have    []int
}

// Matches counts numbers on the card that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}

// Points is 1 for the first match, doubled for each one after.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseCards(input string) ([]Card, error) {
	lines := parse.NonEmptyLines(input)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		_, body, ok := parse.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing ':'", puzzles.ErrMalformedInput, i+1)
		}
		winText, haveText, ok := parse.Cut(body, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '|'", puzzles.ErrMalformedInput, i+1)
		}
		winning, err := parse.Ints(winText)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", puzzles.ErrMalformedInput, i+1, err)
		}
		have, err := parse.Ints(haveText)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", puzzles.ErrMalformedInput, i+1, err)
		}
		cards = append(cards, Card{Winning: winning, Have: have})
	}
	return cards, nil
}

func PartOne(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

// PartTwo counts cards after every win hands out copies of the following
// cards. Wins that would run past the last card are dropped.
func PartTwo(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
