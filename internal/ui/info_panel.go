// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/interfaces"
	"go-hex-territory/internal/secure"
	"go-hex-territory/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel выезжает снизу и показывает сведения о клетке под курсором.
type InfoPanel struct {
	IsVisible bool
	Target    hexmap.Hex
	fontFace  font.Face
	currentY  float64
	targetY   float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(h hexmap.Hex) {
	p.Target = h
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update анимация выезда
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// CellInfoLines текст о клетке: состояние, игрок и связанные зоны
func CellInfoLines(ctx interfaces.GameContext, h hexmap.Hex) []string {
	hm := ctx.GetHexMap()
	state, ok := hm.State(h)
	if !ok {
		return []string{fmt.Sprintf("Hex %s", h), "Outside the grid"}
	}
	lines := []string{fmt.Sprintf("Hex %s  %s", h, state)}
	if ctx.PlayerHex() == h {
		lines = append(lines, "Player is here")
	}
	for _, z := range ctx.Zones() {
		if z.Anchor() == h {
			lines = append(lines, fmt.Sprintf("Zone anchor: %s, %d/%d visited", z.Phase(), z.VisitedCount(), secure.RequiredCount))
			continue
		}
		for _, r := range z.RequiredHexes() {
			if r != h {
				continue
			}
			status := "pending"
			if z.IsVisited(h) {
				status = "visited"
			}
			lines = append(lines, fmt.Sprintf("Required by zone %s (%s)", z.Anchor(), status))
		}
	}
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ctx interfaces.GameContext) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth/2,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	y := panelRect.Min.Y + 15 + lineHeight/2
	for _, line := range CellInfoLines(ctx, p.Target) {
		text.Draw(screen, line, p.fontFace, panelRect.Min.X+15, y, config.TextLightColor)
		y += lineHeight
	}
}
