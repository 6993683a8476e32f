// internal/highlight/highlighter.go
package highlight

import (
	"image/color"

	"go-hex-territory/pkg/hexmap"
)

// Highlighter хранит цвет подсветки на клетку. Рендер читает его каждый кадр,
// на игровую логику подсветка не влияет.
type Highlighter struct {
	colors map[hexmap.Hex]color.RGBA
}

func NewHighlighter() *Highlighter {
	return &Highlighter{colors: make(map[hexmap.Hex]color.RGBA)}
}

// SetColor задаёт цвет клетки. Полностью прозрачный цвет снимает подсветку.
func (h *Highlighter) SetColor(hex hexmap.Hex, c color.RGBA) {
	if c.A == 0 {
		delete(h.colors, hex)
		return
	}
	h.colors[hex] = c
}

func (h *Highlighter) Clear(hex hexmap.Hex) {
	delete(h.colors, hex)
}

func (h *Highlighter) ClearMany(hexes []hexmap.Hex) {
	for _, hex := range hexes {
		delete(h.colors, hex)
	}
}

// ClearAll снимает всю подсветку (рестарт)
func (h *Highlighter) ClearAll() {
	h.colors = make(map[hexmap.Hex]color.RGBA)
}

func (h *Highlighter) Color(hex hexmap.Hex) (color.RGBA, bool) {
	c, ok := h.colors[hex]
	return c, ok
}

func (h *Highlighter) Len() int {
	return len(h.colors)
}

// Each обходит подсвеченные клетки в произвольном порядке
func (h *Highlighter) Each(fn func(hex hexmap.Hex, c color.RGBA)) {
	for hex, c := range h.colors {
		fn(hex, c)
	}
}
