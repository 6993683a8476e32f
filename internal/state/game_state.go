// internal/state/game_state.go
package state

import (
	"log/slog"

	"go-hex-territory/internal/app"
	"go-hex-territory/internal/config"
	"go-hex-territory/internal/report"
	"go-hex-territory/internal/sound"
	"go-hex-territory/internal/system"
	"go-hex-territory/internal/ui"
	"go-hex-territory/internal/utils"
	"go-hex-territory/pkg/hexmap"
	"go-hex-territory/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const messageDuration = 2.0

// GameState основной экран забега
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	sfx          *sound.Player
	renderer     *render.HexRenderer
	renderSystem *system.RenderSystem
	face         font.Face
	indicator    *ui.StateIndicator
	pauseButton  *ui.PauseButton
	health       *ui.PlayerHealthIndicator
	coverage     *ui.CoverageIndicator
	secured      *ui.SecuredIndicator
	infoPanel    *ui.InfoPanel
	pointer      pointerTracker
	message      string
	messageTimer float64
}

func NewGameState(sm *StateMachine, game *app.Game, sfx *sound.Player) *GameState {
	face := basicfont.Face7x13
	colors := render.CellColors{
		BackgroundColor: config.BackgroundColor,
		NeutralColor:    config.NeutralColor,
		TrailColor:      config.TrailColor,
		CapturedColor:   config.CapturedColor,
		StrokeColor:     config.CellStrokeColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	project := func(h hexmap.Hex) (float64, float64) {
		return utils.HexToScreen(game.HexMap, h)
	}

	return &GameState{
		sm:           sm,
		game:         game,
		sfx:          sfx,
		renderer:     render.NewHexRenderer(game.HexMap, colors, config.HexSize, project, config.ScreenWidth, config.ScreenHeight),
		renderSystem: system.NewRenderSystem(game.ECS),
		face:         face,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-3*config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
			config.IdleStateColor, config.DoneColor,
		),
		health:    ui.NewPlayerHealthIndicator(20, float32(config.ScreenHeight-60), face),
		coverage:  ui.NewCoverageIndicator(float32(config.ScreenWidth-150), float32(config.ScreenHeight-60)),
		secured:   ui.NewSecuredIndicator(float32(config.ScreenWidth/2), 30, face, config.TextLightColor, config.DoneColor),
		infoPanel: ui.NewInfoPanel(face),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.messageTimer -= deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()
	g.handlePointer()

	g.game.Update(deltaTime)

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	for _, k := range directionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.game.MoveByIndex(int(k.dir))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sfx != nil {
		if g.sfx.ToggleMute() {
			g.showMessage("sound off")
		} else {
			g.showMessage("sound on")
		}
	}
	// удар со случайной стороны, врагов в этой игре нет
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.game.HitFrom(hexmap.Direction(g.game.Rng.Intn(hexmap.DirectionCount)))
	}
}

func (g *GameState) handlePointer() {
	x, y := ebiten.CursorPosition()
	hover := utils.ScreenToHex(g.game.HexMap, float64(x), float64(y))
	if g.game.HexMap.IsInBounds(hover) {
		g.infoPanel.SetTarget(hover)
	} else {
		g.infoPanel.Hide()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleUIClick(x, y) {
			return
		}
		g.pointer.Press(x, y)
	}
	if g.pointer.Move(x, y) {
		g.pointer.Extend(func(trace []hexmap.Hex) []hexmap.Hex {
			return g.game.ExtendTrace(trace, hover)
		})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.pointer.Pressed() {
		trace, dragged := g.pointer.Release()
		if dragged {
			g.game.MoveByPath(trace)
		} else {
			steps := 1
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				steps = config.ClickStepsShift
			}
			wx, wy := utils.ScreenToWorld(float64(x), float64(y))
			g.game.MoveToward(wx, wy, steps)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.RouteTo(hover)
	}
}

// handleUIClick true, если клик пришёлся на элемент интерфейса
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.pauseButton.TogglePause()
		g.sm.Push(NewPauseState(g.sm, g))
		return true
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.game.Walker.Cancel()
		return true
	}
	return false
}

// Restart новый забег в том же окне
func (g *GameState) Restart() {
	g.game.Restart()
	g.renderer.Invalidate()
	g.pointer.Release()
	g.showMessage("restarted")
}

func (g *GameState) copyReport() {
	if err := report.CopyToClipboard(g.game.Stats()); err != nil {
		slog.Warn("run report not copied", "err", err)
		g.showMessage("clipboard unavailable")
		return
	}
	g.showMessage("report copied")
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageTimer = messageDuration
}

func (g *GameState) SetPaused(paused bool) {
	g.pauseButton.SetPaused(paused)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	preview := g.game.PlannedPath()
	if g.pointer.Dragging() {
		preview = g.pointer.Trace()
	}
	g.renderer.Draw(screen, g.game.HighlightColor, preview, config.PathPreviewColor)
	g.renderSystem.Draw(screen, g.game.GetGameTime())

	stats := g.game.Stats()
	ui.DrawHUD(screen, g.face, 20, 30, ui.HUDLines(stats, g.game.Zones()))
	if p := g.game.Player(); p != nil {
		g.health.Draw(screen, p.HP, p.MaxHP)
	}
	g.coverage.Draw(screen, stats.Coverage(), len(g.game.Zones()), g.game.Settings.Spawn.MaxZones, config.AnchorColor)
	g.secured.Draw(screen, stats.ZonesSecured)

	stateColor := config.IdleStateColor
	if g.game.Walker.IsMoving() {
		stateColor = config.MovingStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, g.game)

	if g.messageTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.message, config.ScreenWidth/2-40, 50)
	}
}

func (g *GameState) Exit() {}
