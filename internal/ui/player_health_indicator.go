// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-hex-territory/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// healthCellColor цвет j-го кружка. Здоровье сверх максимума рисуется цветом бонуса.
func healthCellColor(j, health, maxHealth int) color.RGBA {
	switch {
	case j >= health:
		return config.HealthEmptyColor
	case j >= maxHealth:
		return config.DoneColor
	default:
		return config.HealthFullColor
	}
}

// Draw рисует кружки: не меньше максимума, больше если игрок подлечился сверх него.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	cells := max(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < cells; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, healthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-6, config.TextLightColor)
}
