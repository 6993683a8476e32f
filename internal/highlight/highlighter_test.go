package highlight

import (
	"image/color"
	"testing"

	"go-hex-territory/pkg/hexmap"
)

func TestSetAndClear(t *testing.T) {
	h := NewHighlighter()
	a, b := hexmap.Hex{Col: 1, Row: 1}, hexmap.Hex{Col: 2, Row: 1}
	yellow := color.RGBA{255, 255, 0, 255}
	h.SetColor(a, yellow)
	h.SetColor(b, yellow)
	if c, ok := h.Color(a); !ok || c != yellow {
		t.Fatalf("Color(a) = %v, %v", c, ok)
	}
	h.ClearMany([]hexmap.Hex{a, {Col: 9, Row: 9}})
	if _, ok := h.Color(a); ok || h.Len() != 1 {
		t.Fatalf("ClearMany left %d highlights", h.Len())
	}
	h.SetColor(b, color.RGBA{255, 255, 255, 0})
	if h.Len() != 0 {
		t.Fatalf("transparent color should clear the highlight")
	}
}

func TestEachAndClearAll(t *testing.T) {
	h := NewHighlighter()
	for col := 0; col < 3; col++ {
		h.SetColor(hexmap.Hex{Col: col}, color.RGBA{0, 255, 0, 255})
	}
	n := 0
	h.Each(func(hexmap.Hex, color.RGBA) { n++ })
	if n != 3 {
		t.Fatalf("Each visited %d, want 3", n)
	}
	h.ClearAll()
	if h.Len() != 0 {
		t.Fatalf("ClearAll left %d", h.Len())
	}
}
