// internal/ui/coverage_indicator.go
package ui

import (
	"image/color"

	"go-hex-territory/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CoverageIndicator полоса захваченной доли поля и квадраты активных зон.
type CoverageIndicator struct {
	X, Y float32
}

const (
	barWidth     = 118
	barHeight    = 12
	markWidth    = 16
	markHeight   = 12
	markGap      = 9
	borderWidth  = 1
	markTopSpace = 10
)

var (
	barFillColor = color.RGBA{60, 140, 220, 240}
	borderColor  = color.White
)

func NewCoverageIndicator(x, y float32) *CoverageIndicator {
	return &CoverageIndicator{X: x, Y: y}
}

// fillWidth ширина заполненной части полосы
func fillWidth(coverage float64) float32 {
	coverage = utils.Clamp(coverage, 0, 1)
	return float32(float64(barWidth-borderWidth*2) * coverage)
}

func (i *CoverageIndicator) Draw(screen *ebiten.Image, coverage float64, activeZones, maxZones int, zoneColor color.RGBA) {
	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)
	if w := fillWidth(coverage); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, barHeight-borderWidth*2, barFillColor, true)
	}

	rectY := i.Y + barHeight + markTopSpace
	for j := 0; j < maxZones; j++ {
		rectX := i.X + float32(j)*(markWidth+markGap)
		vector.StrokeRect(screen, rectX, rectY, markWidth, markHeight, borderWidth, borderColor, true)
		if j < activeZones {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, markWidth-borderWidth*2, markHeight-borderWidth*2, zoneColor, true)
		}
	}
}
