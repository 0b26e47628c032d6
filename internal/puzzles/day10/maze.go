package day10

import (
	"errors"
	"fmt"

	"github.com/danmuck/aocctl/internal/mathx"
	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

var (
	ErrNoStart = errors.New("no start tile")
	ErrNoLoop  = errors.New("no loop through start")
)

type direction int

const (
	north direction = iota
	east
	south
	west
)

var steps = [...]mathx.Point{
	north: {X: 0, Y: -1},
	east:  {X: 1, Y: 0},
	south: {X: 0, Y: 1},
	west:  {X: -1, Y: 0},
}

func (d direction) opposite() direction {
	return (d + 2) % 4
}

// pipes lists the two openings of every pipe tile.
var pipes = map[byte][2]direction{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

func opensTo(tile byte, d direction) bool {
	ends, ok := pipes[tile]
	return ok && (ends[0] == d || ends[1] == d)
}

// Maze is the parsed tile grid with the start located.
type Maze struct {
	rows  [][]byte
	start mathx.Point
}

func ParseMaze(input string) (*Maze, error) {
	rows, err := parse.Grid(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzles.ErrMalformedInput, err)
	}
	m := &Maze{rows: rows}
	found := false
	for y, row := range rows {
		for x, c := range row {
			switch {
			case c == 'S':
				if found {
					return nil, fmt.Errorf("%w: more than one start tile", puzzles.ErrMalformedInput)
				}
				m.start = mathx.Point{X: x, Y: y}
				found = true
			case c == '.':
			default:
				if _, ok := pipes[c]; !ok {
					return nil, fmt.Errorf("%w: line %d: unknown tile %q", puzzles.ErrMalformedInput, y+1, c)
				}
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %w", puzzles.ErrMalformedInput, ErrNoStart)
	}
	return m, nil
}

func (m *Maze) tile(p mathx.Point) (byte, bool) {
	if p.Y < 0 || p.Y >= len(m.rows) || p.X < 0 || p.X >= len(m.rows[p.Y]) {
		return 0, false
	}
	return m.rows[p.Y][p.X], true
}

// Loop returns the loop tiles in walking order, starting at S.
func (m *Maze) Loop() ([]mathx.Point, error) {
	for d := north; d <= west; d++ {
		if path, ok := m.follow(d); ok {
			return path, nil
		}
	}
	return nil, ErrNoLoop
}

// follow leaves S heading d and reports whether the pipes lead back to S.
func (m *Maze) follow(d direction) ([]mathx.Point, bool) {
	path := []mathx.Point{m.start}
	pos := m.start
	heading := d
	for {
		pos = pos.Add(steps[heading])
		if pos == m.start {
			return path, true
		}
		c, ok := m.tile(pos)
		if !ok {
			return nil, false
		}
		entry := heading.opposite()
		if !opensTo(c, entry) {
			return nil, false
		}
		ends := pipes[c]
		if ends[0] == entry {
			heading = ends[1]
		} else {
			heading = ends[0]
		}
		path = append(path, pos)
		if len(path) > len(m.rows)*len(m.rows[0]) {
			return nil, false
		}
	}
}

// Enclosed counts grid tiles strictly inside the loop. The shoelace formula
// gives the polygon area over tile centres; Pick's theorem removes the
// boundary tiles from it.
func Enclosed(loop []mathx.Point) int {
	twiceArea := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twiceArea += p.X*q.Y - q.X*p.Y
	}
	twiceArea = mathx.Abs(twiceArea)
	return (twiceArea-len(loop))/2 + 1
}

func PartOne(input string) (int, error) {
	m, err := ParseMaze(input)
	if err != nil {
		return 0, err
	}
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

func PartTwo(input string) (int, error) {
	m, err := ParseMaze(input)
	if err != nil {
		return 0, err
	}
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return Enclosed(loop), nil
}
