package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Cubes counts cubes by colour.
type Cubes struct {
	Red   int `toml:"red" json:"red"`
	Green int `toml:"green" json:"green"`
	Blue  int `toml:"blue" json:"blue"`
}

func DefaultBag() Cubes {
	return Cubes{Red: 12, Green: 13, Blue: 14}
}

// Fits reports whether every colour in c is within bag.
func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

// Power is the product of the three colour counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

func (c Cubes) max(o Cubes) Cubes {
	return Cubes{
		Red:   max(c.Red, o.Red),
		Green: max(c.Green, o.Green),
		Blue:  max(c.Blue, o.Blue),
	}
}

// Game is one line of the record: an id and the handfuls revealed.
type Game struct {
	ID      int
	Reveals []Cubes
}

// Minimum is the smallest bag that makes g possible.
func (g Game) Minimum() Cubes {
	var out Cubes
	for _, r := range g.Reveals {
		out = out.max(r)
	}
	return out
}

func (g Game) PossibleWith(bag Cubes) bool {
	for _, r := range g.Reveals {
		if !r.Fits(bag) {
			return false
		}
	}
	return true
}

func PartOne(input string) (int, error) {
	return PartOneWithBag(input, DefaultBag())
}

func PartOneWithBag(input string, bag Cubes) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.PossibleWith(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// PartTwo sums the minimum-bag power of every game. A game that never shows a
// colour has a power of zero.
func PartTwo(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum, nil
}

func parseGames(input string) ([]Game, error) {
	lines := parse.NonEmptyLines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", puzzles.ErrMalformedInput, i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	head, body, ok := parse.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	idText, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("missing game header in %q", head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q", idText)
	}

	g := Game{ID: id}
	for _, handful := range strings.Split(body, ";") {
		var reveal Cubes
		for _, entry := range strings.Split(handful, ",") {
			fields := strings.Fields(entry)
			if len(fields) == 0 {
				continue
			}
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("bad reveal %q", strings.TrimSpace(entry))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("bad cube count %q", fields[0])
			}
			switch fields[1] {
			case "red":
				reveal.Red += n
			case "green":
				reveal.Green += n
			case "blue":
				reveal.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown cube colour %q", fields[1])
			}
		}
		g.Reveals = append(g.Reveals, reveal)
	}
	return g, nil
}
