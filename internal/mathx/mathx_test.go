package mathx

import "testing"

func TestGCDAndLCM(t *testing.T) {
	if got := GCD(12, 18); got != 6 {
		t.Fatalf("GCD(12,18) = %d", got)
	}
	if got := GCD(-12, 18); got != 6 {
		t.Fatalf("GCD(-12,18) = %d", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Fatalf("LCM(4,6) = %d", got)
	}
	if got := LCM(0, 6); got != 0 {
		t.Fatalf("LCM(0,6) = %d", got)
	}
	if got := LCMAll[int64](2, 3, 4, 5); got != 60 {
		t.Fatalf("LCMAll = %d", got)
	}
	if got := LCMAll[int](); got != 0 {
		t.Fatalf("LCMAll() = %d", got)
	}
}

func TestPointManhattanAndNeighbours(t *testing.T) {
	a := Point{X: 1, Y: 6}
	b := Point{X: 5, Y: 11}
	if got := a.Manhattan(b); got != 9 {
		t.Fatalf("Manhattan = %d", got)
	}
	if got := a.Add(Point{X: -1, Y: 1}); got != (Point{X: 0, Y: 7}) {
		t.Fatalf("Add = %+v", got)
	}
	n := Point{}.Neighbours8()
	if len(n) != 8 {
		t.Fatalf("expected 8 neighbours, got %d", len(n))
	}
	for _, p := range n {
		if p == (Point{}) {
			t.Fatalf("neighbours must exclude the origin")
		}
	}
}
