package day11

import (
	"fmt"

	"github.com/danmuck/aocctl/internal/mathx"
	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Galaxies returns galaxy positions after every empty row and column is
// replaced by factor copies of itself.
func Galaxies(input string, factor int) ([]mathx.Point, error) {
	if factor < 1 {
		return nil, fmt.Errorf("expansion factor must be >= 1, got %d", factor)
	}
	rows, err := parse.Grid(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzles.ErrMalformedInput, err)
	}
	width := len(rows[0])
	rowHas := make([]bool, len(rows))
	colHas := make([]bool, width)
	var raw []mathx.Point
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case '#':
				raw = append(raw, mathx.Point{X: x, Y: y})
				rowHas[y] = true
				colHas[x] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: line %d: unknown tile %q", puzzles.ErrMalformedInput, y+1, c)
			}
		}
	}

	// expanded offset of each original row and column
	rowAt := offsets(rowHas, factor)
	colAt := offsets(colHas, factor)
	out := make([]mathx.Point, len(raw))
	for i, p := range raw {
		out[i] = mathx.Point{X: colAt[p.X], Y: rowAt[p.Y]}
	}
	return out, nil
}

func offsets(occupied []bool, factor int) []int {
	out := make([]int, len(occupied))
	pos := 0
	for i, has := range occupied {
		out[i] = pos
		if has {
			pos++
		} else {
			pos += factor
		}
	}
	return out
}

// PairDistanceSum adds the Manhattan distance of every unordered pair.
func PairDistanceSum(points []mathx.Point) int {
	total := 0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			total += points[i].Manhattan(points[j])
		}
	}
	return total
}

func DistanceSum(input string, factor int) (int, error) {
	galaxies, err := Galaxies(input, factor)
	if err != nil {
		return 0, err
	}
	return PairDistanceSum(galaxies), nil
}

func PartOne(input string) (int, error) {
	return DistanceSum(input, 2)
}

func PartTwo(input string) (int, error) {
	return DistanceSum(input, DefaultExpansion)
}
