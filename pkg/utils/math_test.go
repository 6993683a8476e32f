package utils

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(4) != 4 || Abs(0) != 0 {
		t.Fatalf("Abs returned wrong values")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 1); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
