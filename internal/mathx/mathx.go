// Package mathx has the generic integer helpers shared by the grid and
// traversal puzzles.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	v := a / GCD(a, b) * b
	if v < 0 {
		return -v
	}
	return v
}

// LCMAll folds LCM over vs. An empty list yields 0.
func LCMAll[T constraints.Integer](vs ...T) T {
	var out T
	for i, v := range vs {
		if i == 0 {
			out = v
			continue
		}
		out = LCM(out, v)
	}
	return out
}

// Point is a grid coordinate; X grows to the right and Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Neighbours8 returns the eight points surrounding p, row by row.
func (p Point) Neighbours8() []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Point{X: p.X + dx, Y: p.Y + dy})
		}
	}
	return out
}
