package hexmap

import (
	"errors"
	"testing"
)

func TestWorldRoundTrip(t *testing.T) {
	sizes := [][2]int{{1, 1}, {5, 5}, {9, 9}, {10, 7}, {4, 12}}
	for _, s := range sizes {
		hm := NewHexMap(s[0], s[1])
		for _, h := range hm.Hexes() {
			x, y := HexToWorld(h, s[0], s[1])
			got := WorldToHex(x, y, s[0], s[1])
			if got != h {
				t.Fatalf("grid %dx%d: WorldToHex(HexToWorld(%v)) = %v", s[0], s[1], h, got)
			}
		}
	}
}

func TestGridIsCentered(t *testing.T) {
	l := NewLayout(9, 9)
	x, y := l.HexToWorld(Hex{Col: 4, Row: 4})
	if x != 0 || y != 0 {
		t.Fatalf("center of 9x9 should be at origin, got (%v, %v)", x, y)
	}
	_, yEven := l.HexToWorld(Hex{Col: 2, Row: 3})
	_, yOdd := l.HexToWorld(Hex{Col: 3, Row: 3})
	if diff := yOdd - yEven; diff < CellHeight/2-1e-9 || diff > CellHeight/2+1e-9 {
		t.Fatalf("odd column offset = %v, want %v", diff, CellHeight/2)
	}
}

func TestNeighborTables(t *testing.T) {
	even := Hex{Col: 2, Row: 2}.Neighbors()
	wantEven := [DirectionCount]Hex{{2, 3}, {3, 2}, {3, 1}, {2, 1}, {1, 1}, {1, 2}}
	if even != wantEven {
		t.Fatalf("even neighbors = %v, want %v", even, wantEven)
	}
	odd := Hex{Col: 3, Row: 2}.Neighbors()
	wantOdd := [DirectionCount]Hex{{3, 3}, {4, 3}, {4, 2}, {3, 1}, {2, 2}, {2, 3}}
	if odd != wantOdd {
		t.Fatalf("odd neighbors = %v, want %v", odd, wantOdd)
	}
	// отрицательные колонки тоже нечётные
	if !(Hex{Col: -1, Row: 0}).IsOddColumn() {
		t.Fatalf("column -1 should be odd")
	}
}

func TestNeighborSymmetry(t *testing.T) {
	hm := NewHexMap(9, 9)
	for _, h := range hm.Hexes() {
		for _, n := range h.Neighbors() {
			if !hm.IsInBounds(n) {
				continue
			}
			if !n.IsAdjacent(h) {
				t.Fatalf("%v lists %v as neighbor but not vice versa", h, n)
			}
		}
	}
}

func TestNeighborsAreOneCellApart(t *testing.T) {
	l := NewLayout(9, 9)
	h := Hex{Col: 3, Row: 4}
	hx, hy := l.HexToWorld(h)
	for _, n := range h.Neighbors() {
		nx, ny := l.HexToWorld(n)
		d2 := (nx-hx)*(nx-hx) + (ny-hy)*(ny-hy)
		if d2 < 0.75-1e-9 || d2 > 0.75+1e-9 {
			t.Fatalf("neighbor %v of %v at squared distance %v, want 0.75", n, h, d2)
		}
	}
}

func TestDirectionToward(t *testing.T) {
	l := NewLayout(9, 9)
	h := Hex{Col: 4, Row: 4}
	for d := Direction(0); d < DirectionCount; d++ {
		nx, ny := l.HexToWorld(h.Neighbor(d))
		got, ok := l.DirectionToward(h, nx, ny)
		if !ok || got != d {
			t.Fatalf("DirectionToward neighbor %v = %v, want %v", d, got, d)
		}
	}
	hx, hy := l.HexToWorld(h)
	if _, ok := l.DirectionToward(h, hx, hy); ok {
		t.Fatalf("zero vector should not yield a direction")
	}
}

func TestDistances(t *testing.T) {
	a := Hex{Col: 0, Row: 0}
	if got := a.Distance(Hex{Col: 2, Row: 1}); got != 3 {
		t.Fatalf("Distance = %d, want 3", got)
	}
	h := Hex{Col: 5, Row: 5}
	for _, n := range h.Neighbors() {
		if got := h.StepDistance(n); got != 1 {
			t.Fatalf("StepDistance to neighbor %v = %d, want 1", n, got)
		}
	}
	if got := h.StepDistance(h); got != 0 {
		t.Fatalf("StepDistance to self = %d", got)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" nw ")
	if err != nil || d != NorthWest {
		t.Fatalf("ParseDirection(nw) = %v, %v", d, err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
	if Direction(7).Valid() {
		t.Fatalf("direction 7 should be invalid")
	}
	h := Hex{Col: 1, Row: 1}
	if h.Neighbor(Direction(-1)) != h {
		t.Fatalf("invalid direction should not move")
	}
}
