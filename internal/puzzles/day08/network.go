package day08

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danmuck/aocctl/internal/mathx"
	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrUnreachable = errors.New("destination unreachable")
)

const (
	startNode = "AAA"
	endNode   = "ZZZ"
	// ctxCheckEvery bounds how often long walks poll for cancellation.
	ctxCheckEvery = 1 << 14
)

type branches struct {
	left, right string
}

// Network is the instruction tape plus the node graph.
type Network struct {
	Instructions string
	nodes        map[string]branches
}

func ParseNetwork(input string) (*Network, error) {
	lines := parse.NonEmptyLines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", puzzles.ErrMalformedInput)
	}
	instr := strings.TrimSpace(lines[0])
	if instr == "" || strings.Trim(instr, "LR") != "" {
		return nil, fmt.Errorf("%w: line 1: instructions must be L/R, got %q", puzzles.ErrMalformedInput, instr)
	}
	n := &Network{Instructions: instr, nodes: make(map[string]branches, len(lines)-1)}
	for i, line := range lines[1:] {
		name, rest, ok := parse.Cut(line, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: line %d: missing '='", puzzles.ErrMalformedInput, i+2)
		}
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		left, right, ok := parse.Cut(rest, ",")
		if !ok || left == "" || right == "" {
			return nil, fmt.Errorf("%w: line %d: want '(LEFT, RIGHT)'", puzzles.ErrMalformedInput, i+2)
		}
		if _, dup := n.nodes[name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate node %s", puzzles.ErrMalformedInput, i+2, name)
		}
		n.nodes[name] = branches{left: left, right: right}
	}
	return n, nil
}

func (n *Network) step(node string, turn byte) (string, error) {
	b, ok := n.nodes[node]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, node)
	}
	if turn == 'L' {
		return b.left, nil
	}
	return b.right, nil
}

// Walk counts steps from start until done reports true, taking at least one
// step. Revisiting a (node, instruction index) pair means done can never be
// reached and yields ErrUnreachable.
func (n *Network) Walk(ctx context.Context, start string, done func(string) bool) (int, error) {
	if _, ok := n.nodes[start]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNode, start)
	}
	type state struct {
		node string
		pos  int
	}
	seen := make(map[state]struct{})
	node := start
	steps := 0
	for {
		pos := steps % len(n.Instructions)
		st := state{node: node, pos: pos}
		if _, loop := seen[st]; loop {
			return 0, fmt.Errorf("%w: from %s", ErrUnreachable, start)
		}
		seen[st] = struct{}{}

		next, err := n.step(node, n.Instructions[pos])
		if err != nil {
			return 0, err
		}
		node = next
		steps++
		if done(node) {
			return steps, nil
		}
		if steps%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}
}

// Starts returns every node whose name ends in suffix, sorted.
func (n *Network) Starts(suffix string) []string {
	var out []string
	for name := range n.nodes {
		if strings.HasSuffix(name, suffix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func PartOne(input string) (int, error) {
	return PartOneContext(context.Background(), input)
}

func PartOneContext(ctx context.Context, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	return n.Walk(ctx, startNode, func(s string) bool { return s == endNode })
}

func PartTwo(input string) (int, error) {
	return PartTwoContext(context.Background(), input)
}

// PartTwoContext takes the LCM of each walker's first arrival. Puzzle inputs
// are built so that every walker cycles back to its ..Z node on that period.
func PartTwoContext(ctx context.Context, input string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	starts := n.Starts("A")
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no nodes ending in A", puzzles.ErrMalformedInput)
	}
	isEnd := func(s string) bool { return strings.HasSuffix(s, "Z") }
	periods := make([]int, 0, len(starts))
	for _, s := range starts {
		steps, err := n.Walk(ctx, s, isEnd)
		if err != nil {
			return 0, err
		}
		periods = append(periods, steps)
	}
	return mathx.LCMAll(periods...), nil
}
