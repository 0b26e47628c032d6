package day07

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danmuck/aocctl/internal/parse"
	"github.com/danmuck/aocctl/internal/puzzles"
)

// Rules selects how J is treated.
type Rules int

const (
	Standard Rules = iota
	Jokers
)

const (
	standardOrder = "23456789TJQKA"
	jokerOrder    = "J23456789TQKA"
	handSize      = 5
)

// Type is a hand category; larger is stronger.
type Type int

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var typeNames = [...]string{
	"high card", "one pair", "two pair", "three of a kind",
	"full house", "four of a kind", "five of a kind",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Hand is a parsed hand with its bid, typed and scored under one rule set.
type Hand struct {
	Cards string
	Bid   int
	Type  Type
	// strength holds each card's rank in play order, for tie breaks.
	strength [handSize]int
}

func (r Rules) order() string {
	if r == Jokers {
		return jokerOrder
	}
	return standardOrder
}

// NewHand types cards under the given rules.
func NewHand(cards string, bid int, rules Rules) (Hand, error) {
	if len(cards) != handSize {
		return Hand{}, fmt.Errorf("hand %q must have %d cards", cards, handSize)
	}
	h := Hand{Cards: cards, Bid: bid}
	order := rules.order()
	for i := 0; i < handSize; i++ {
		rank := strings.IndexByte(order, cards[i])
		if rank < 0 {
			return Hand{}, fmt.Errorf("unknown card %q in %q", cards[i], cards)
		}
		h.strength[i] = rank
	}
	h.Type = classify(cards, rules)
	return h, nil
}

// classify derives the type from card multiplicities. Under joker rules the
// jokers join the largest group of real cards, which is always optimal.
func classify(cards string, rules Rules) Type {
	counts := make(map[byte]int, handSize)
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if rules == Jokers && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Less orders hands weakest first: by type, then card by card from the left.
func (h Hand) Less(o Hand) bool {
	if h.Type != o.Type {
		return h.Type < o.Type
	}
	for i := 0; i < handSize; i++ {
		if h.strength[i] != o.strength[i] {
			return h.strength[i] < o.strength[i]
		}
	}
	return false
}

func ParseHands(input string, rules Rules) ([]Hand, error) {
	lines := parse.NonEmptyLines(input)
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want '<cards> <bid>'", puzzles.ErrMalformedInput, i+1)
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad bid %q", puzzles.ErrMalformedInput, i+1, fields[1])
		}
		h, err := NewHand(fields[0], bid, rules)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", puzzles.ErrMalformedInput, i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Winnings ranks every hand and sums bid * rank, rank 1 being the weakest.
func Winnings(input string, rules Rules) (int, error) {
	hands, err := ParseHands(input, rules)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(hands, func(i, j int) bool {
		return hands[i].Less(hands[j])
	})
	total := 0
	for i, h := range hands {
		total += h.Bid * (i + 1)
	}
	return total, nil
}

func PartOne(input string) (int, error) {
	return Winnings(input, Standard)
}

func PartTwo(input string) (int, error) {
	return Winnings(input, Jokers)
}
