// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/report"
	"go-hex-territory/internal/secure"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDLines строки в левом верхнем углу
func HUDLines(stats report.Stats, zones []*secure.Zone) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", stats.Score),
		fmt.Sprintf("Time: %.0fs", stats.Time),
		fmt.Sprintf("Captured: %d cells", stats.CapturedCells),
	}
	for _, z := range zones {
		if left, ok := z.TimeLeft(); ok {
			lines = append(lines, fmt.Sprintf("Zone %s: %.1fs %d/%d", z.Anchor(), left, z.VisitedCount(), secure.RequiredCount))
		}
	}
	return lines
}

func DrawHUD(screen *ebiten.Image, face font.Face, x, y int, lines []string) {
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += lineHeight
	}
}
