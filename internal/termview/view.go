// internal/termview/view.go
package termview

import (
	"fmt"
	"image/color"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/interfaces"
	"go-hex-territory/internal/secure"
	"go-hex-territory/pkg/hexmap"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

const (
	boardLeft = 2
	boardTop  = 1
)

// View рисует забег в терминале
type View struct {
	screen tcell.Screen
	ctx    interfaces.GameContext
}

func NewView(screen tcell.Screen, ctx interfaces.GameContext) *View {
	return &View{screen: screen, ctx: ctx}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	baseStyle     = tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(rgb(config.TextLightColor))
	neutralStyle  = baseStyle.Foreground(rgb(config.NeutralColor))
	trailStyle    = baseStyle.Foreground(rgb(config.TrailColor)).Bold(true)
	capturedStyle = baseStyle.Background(rgb(config.CapturedColor)).Foreground(rgb(config.TextDarkColor))
	playerStyle   = baseStyle.Foreground(rgb(config.PlayerColor)).Bold(true)
	anchorStyle   = baseStyle.Foreground(rgb(config.AnchorColor)).Bold(true)
	plannedStyle  = baseStyle.Foreground(rgb(config.PathPreviewColor))
)

// cellGlyph трёхсимвольная метка клетки и её стиль
func cellGlyph(state hexmap.CellState) (string, tcell.Style) {
	switch state {
	case hexmap.Trail:
		return " o ", trailStyle
	case hexmap.Captured:
		return "###", capturedStyle
	}
	return " . ", neutralStyle
}

func (v *View) put(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Draw полный кадр: поле, статус и подсказка по клавишам
func (v *View) Draw(queued []hexmap.Hex) {
	v.screen.SetStyle(baseStyle)
	v.screen.Clear()

	hm := v.ctx.GetHexMap()
	anchors := mapset.New[hexmap.Hex]()
	for _, z := range v.ctx.Zones() {
		anchors.Put(z.Anchor())
	}
	planned := mapset.New[hexmap.Hex]()
	for _, h := range v.ctx.PlannedPath() {
		planned.Put(h)
	}
	for _, h := range queued {
		planned.Put(h)
	}
	player := v.ctx.PlayerHex()

	for _, h := range hm.Hexes() {
		state, _ := hm.State(h)
		glyph, style := cellGlyph(state)
		if c, ok := v.ctx.HighlightColor(h); ok {
			style = style.Background(rgb(c)).Foreground(rgb(config.TextDarkColor))
		}
		switch {
		case h == player:
			glyph, style = "(@)", playerStyle.Background(backgroundOf(style))
		case anchors.Has(h):
			glyph, style = " $ ", anchorStyle.Background(backgroundOf(style))
		case planned.Has(h) && state != hexmap.Captured:
			glyph, style = " * ", plannedStyle.Background(backgroundOf(style))
		}
		x, y := CellOrigin(h, hm.Height)
		v.put(boardLeft+x, boardTop+y, glyph, style)
	}

	_, boardH := BoardSize(hm.Width, hm.Height)
	y := boardTop + boardH + 1
	for _, line := range StatusLines(v.ctx) {
		v.put(boardLeft, y, line, baseStyle)
		y++
	}
	v.put(boardLeft, y+1, "qweasd: step   QWEASD: plan   enter: go   bksp: undo   r: restart   h: hit   esc: quit", baseStyle)
	v.screen.Show()
}

func backgroundOf(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	return bg
}

// StatusLines счёт, здоровье и таймеры зон
func StatusLines(ctx interfaces.GameContext) []string {
	s := ctx.Stats()
	lines := []string{
		fmt.Sprintf("score %d   hp %d   time %.0fs   captured %d   secured %d", s.Score, s.HP, s.Time, s.CapturedCells, s.ZonesSecured),
	}
	for _, z := range ctx.Zones() {
		line := fmt.Sprintf("zone %s: %s %d/%d", z.Anchor(), z.Phase(), z.VisitedCount(), secure.RequiredCount)
		if left, ok := z.TimeLeft(); ok {
			line += fmt.Sprintf(" %.1fs", left)
		}
		lines = append(lines, line)
	}
	if ctx.IsOver() {
		lines = append(lines, "GAME OVER - press r to restart")
	}
	return lines
}
