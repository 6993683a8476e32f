// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-territory/pkg/hexmap"
)

// CellColors цвета клеток по состоянию и подписи
type CellColors struct {
	BackgroundColor color.RGBA
	NeutralColor    color.RGBA
	TrailColor      color.RGBA
	CapturedColor   color.RGBA
	StrokeColor     color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// Fill цвет заливки для состояния клетки
func (c CellColors) Fill(state hexmap.CellState) color.RGBA {
	switch state {
	case hexmap.Trail:
		return c.TrailColor
	case hexmap.Captured:
		return c.CapturedColor
	}
	return c.NeutralColor
}

// TextOn контрастный цвет подписи поверх заливки
func (c CellColors) TextOn(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor поднимает каждый канал на delta без переполнения
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: 255,
	}
}
