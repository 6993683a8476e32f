// pkg/render/hex_renderer_test.go
package render

import (
	"image/color"
	"math"
	"testing"

	"go-hex-territory/pkg/hexmap"
)

func TestHexCornersFlatTop(t *testing.T) {
	c := HexCorners(100, 50, 10)
	if c[0][0] != 110 || c[0][1] != 50 {
		t.Fatalf("first corner: got %v, want (110, 50)", c[0])
	}
	// верхняя и нижняя грани горизонтальны
	if math.Abs(c[1][1]-c[2][1]) > 1e-9 || math.Abs(c[4][1]-c[5][1]) > 1e-9 {
		t.Fatalf("flat edges expected, got %v", c)
	}
	for i, p := range c {
		if d := math.Hypot(p[0]-100, p[1]-50); math.Abs(d-10) > 1e-9 {
			t.Fatalf("corner %d at distance %v, want 10", i, d)
		}
	}
}

func TestCellColorsByState(t *testing.T) {
	colors := CellColors{
		NeutralColor:   color.RGBA{1, 1, 1, 255},
		TrailColor:     color.RGBA{2, 2, 2, 255},
		CapturedColor:  color.RGBA{3, 3, 3, 255},
		TextDarkColor:  color.RGBA{0, 0, 0, 255},
		TextLightColor: color.RGBA{255, 255, 255, 255},
	}
	if colors.Fill(hexmap.Neutral) != colors.NeutralColor ||
		colors.Fill(hexmap.Trail) != colors.TrailColor ||
		colors.Fill(hexmap.Captured) != colors.CapturedColor {
		t.Fatal("fill color does not follow cell state")
	}
	if colors.TextOn(color.RGBA{250, 250, 250, 255}) != colors.TextDarkColor {
		t.Fatal("light fill needs dark text")
	}
	if colors.TextOn(color.RGBA{10, 10, 10, 255}) != colors.TextLightColor {
		t.Fatal("dark fill needs light text")
	}
}

func TestLightenColorSaturates(t *testing.T) {
	got := LightenColor(color.RGBA{250, 10, 0, 100}, 40)
	if want := (color.RGBA{255, 50, 40, 255}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
