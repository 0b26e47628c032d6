package day06

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Race is one boat race: total milliseconds and the distance to beat.
type Race struct {
	Time   int
	Record int
}

// Distance travelled when the button is held for hold ms.
func (r Race) Distance(hold int) int {
	return hold * (r.Time - hold)
}

func (r Race) beats(hold int) bool {
	return r.Distance(hold) > r.Record
}

// Ways counts hold times in [0, Time] whose distance beats the record.
// Distance is symmetric around Time/2, so only the lowest winning hold is
// searched; the float root is nudged to the exact integer boundary.
func (r Race) Ways() int {
	if r.Time < 0 {
		return 0
	}
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	lo := int(math.Floor((float64(r.Time) - math.Sqrt(disc)) / 2))
	lo = max(lo, 0)
	for lo > 0 && r.beats(lo-1) {
		lo--
	}
	half := r.Time / 2
	for lo <= half && !r.beats(lo) {
		lo++
	}
	if lo > half {
		return 0
	}
	return r.Time - 2*lo + 1
}

func valuesAfter(line, label string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), label)
	if !ok {
		return "", fmt.Errorf("%w: missing %q header", puzzles.ErrMalformedInput, label)
	}
	return rest, nil
}

func headerLines(input string) (string, string, error) {
	lines := parse.NonEmptyLines(input)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want Time and Distance lines, got %d lines", puzzles.ErrMalformedInput, len(lines))
	}
	times, err := valuesAfter(lines[0], "Time:")
	if err != nil {
		return "", "", err
	}
	dists, err := valuesAfter(lines[1], "Distance:")
	if err != nil {
		return "", "", err
	}
	return times, dists, nil
}

// ParseRaces reads the columns of the Time and Distance lines.
func ParseRaces(input string) ([]Race, error) {
	timeText, distText, err := headerLines(input)
	if err != nil {
		return nil, err
	}
	times, err := parse.Ints(timeText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzles.ErrMalformedInput, err)
	}
	dists, err := parse.Ints(distText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzles.ErrMalformedInput, err)
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%w: %d times but %d distances", puzzles.ErrMalformedInput, len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}
	return races, nil
}

// ParseJoinedRace ignores the spacing between columns and reads each line as
// one number.
func ParseJoinedRace(input string) (Race, error) {
	timeText, distText, err := headerLines(input)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.Atoi(strings.Join(strings.Fields(timeText), ""))
	if err != nil {
		return Race{}, fmt.Errorf("%w: time: %v", puzzles.ErrMalformedInput, err)
	}
	d, err := strconv.Atoi(strings.Join(strings.Fields(distText), ""))
	if err != nil {
		return Race{}, fmt.Errorf("%w: distance: %v", puzzles.ErrMalformedInput, err)
	}
	return Race{Time: t, Record: d}, nil
}

func PartOne(input string) (int, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

func PartTwo(input string) (int, error) {
	race, err := ParseJoinedRace(input)
	if err != nil {
		return 0, err
	}
	return race.Ways(), nil
}
