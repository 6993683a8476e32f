// internal/state/menu_state.go
package state

import (
	"image"
	"strings"

	"go-hex-territory/internal/app"
	"go-hex-territory/internal/config"
	"go-hex-territory/internal/report"
	"go-hex-territory/internal/sound"
	"go-hex-territory/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MenuState стартовый экран и экран конца игры
type MenuState struct {
	sm       *StateMachine
	game     *app.Game
	sfx      *sound.Player
	gameView *GameState // nil на стартовом экране
	button   *ui.Button
	face     font.Face
}

func NewMenuState(sm *StateMachine, game *app.Game, sfx *sound.Player) *MenuState {
	return newMenu(sm, game, sfx, nil, "Start")
}

// NewGameOverState показывает итог поверх последнего кадра игры
func NewGameOverState(sm *StateMachine, gs *GameState) *MenuState {
	return newMenu(sm, gs.game, gs.sfx, gs, "Restart")
}

func newMenu(sm *StateMachine, game *app.Game, sfx *sound.Player, gs *GameState, label string) *MenuState {
	face := basicfont.Face7x13
	rect := image.Rect(config.ScreenWidth/2-80, config.ScreenHeight/2+80, config.ScreenWidth/2+80, config.ScreenHeight/2+120)
	return &MenuState{
		sm:       sm,
		game:     game,
		sfx:      sfx,
		gameView: gs,
		button:   ui.NewButton(rect, label, face),
		face:     face,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.button.Contains(x, y)
	}
	if m.gameView != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		m.gameView.copyReport()
	}
	if !start {
		return
	}
	if m.gameView != nil {
		m.gameView.Restart()
		m.sm.SetState(m.gameView)
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.game, m.sfx))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	var lines []string
	if m.gameView != nil {
		m.gameView.Draw(screen)
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		lines = append([]string{"GAME OVER", ""}, strings.Split(strings.TrimSpace(report.Summary(m.game.Stats())), "\n")...)
		lines = append(lines, "", "F5 copies this report")
	} else {
		screen.Fill(config.BackgroundColor)
		lines = []string{
			"HEX TERRITORY",
			"",
			"Q W E / A S D  step to a neighbor",
			"click: step toward cursor, shift-click: 3 steps",
			"drag: trace a path, right click: route to a cell",
			"close a loop of trail to capture what is inside",
			"visit three marked cells around an object in time to secure it",
		}
	}
	y := config.ScreenHeight/2 - 160
	for _, line := range lines {
		w := text.BoundString(m.face, line).Dx()
		text.Draw(screen, line, m.face, (config.ScreenWidth-w)/2, y, config.TextLightColor)
		y += 18
	}
	x, cy := ebiten.CursorPosition()
	m.button.Draw(screen, x, cy)
}

func (m *MenuState) Exit() {}
