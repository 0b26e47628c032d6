package day03

import (
	"fmt"

	"github.com/danmuck/aocctl/internal/mathx"
	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// number is a horizontal run of digits.
type number struct {
	value int
	row   int
	start int
	end   int // inclusive
}

// Schematic indexes every number and symbol in the engine grid.
type Schematic struct {
	rows    [][]byte
	numbers []number
	// owner maps each digit cell to its index in numbers.
	owner map[mathx.Point]int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

func ParseSchematic(input string) (*Schematic, error) {
	rows, err := parse.Grid(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzles.ErrMalformedInput, err)
	}
	s := &Schematic{rows: rows, owner: make(map[mathx.Point]int)}
	for y, row := range rows {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := number{row: y, start: x}
			for x < len(row) && isDigit(row[x]) {
				n.value = n.value*10 + int(row[x]-'0')
				s.owner[mathx.Point{X: x, Y: y}] = len(s.numbers)
				x++
			}
			n.end = x - 1
			s.numbers = append(s.numbers, n)
		}
	}
	return s, nil
}

func (s *Schematic) at(p mathx.Point) (byte, bool) {
	if p.Y < 0 || p.Y >= len(s.rows) || p.X < 0 || p.X >= len(s.rows[p.Y]) {
		return 0, false
	}
	return s.rows[p.Y][p.X], true
}

// adjacentNumbers returns the distinct numbers touching p, in discovery order.
func (s *Schematic) adjacentNumbers(p mathx.Point) []int {
	var out []int
	seen := make(map[int]bool)
	for _, q := range p.Neighbours8() {
		idx, ok := s.owner[q]
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

// PartNumbers returns the value of every number touching a symbol.
func (s *Schematic) PartNumbers() []int {
	var out []int
	for _, n := range s.numbers {
		if s.touchesSymbol(n) {
			out = append(out, n.value)
		}
	}
	return out
}

func (s *Schematic) touchesSymbol(n number) bool {
	for y := n.row - 1; y <= n.row+1; y++ {
		for x := n.start - 1; x <= n.end+1; x++ {
			if c, ok := s.at(mathx.Point{X: x, Y: y}); ok && isSymbol(c) {
				return true
			}
		}
	}
	return false
}

// GearRatios returns the product of the two numbers around each gear.
func (s *Schematic) GearRatios() []int {
	var out []int
	for y, row := range s.rows {
		for x, c := range row {
			if c != '*' {
				continue
			}
			adj := s.adjacentNumbers(mathx.Point{X: x, Y: y})
			if len(adj) == 2 {
				out = append(out, s.numbers[adj[0]].value*s.numbers[adj[1]].value)
			}
		}
	}
	return out
}

func sum(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}

func PartOne(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	return sum(s.PartNumbers()), nil
}

func PartTwo(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	return sum(s.GearRatios()), nil
}
