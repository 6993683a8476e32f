// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-hex-territory/internal/app"
	"go-hex-territory/internal/config"
	"go-hex-territory/internal/sound"
	"go-hex-territory/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // пропустить стартовое меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file (defaults to $CONFIG_PATH)")
	flag.Parse()

	settings, err := config.Resolve(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	config.SetupLogger(os.Stderr, settings.LogLevel)

	game := app.NewGame(settings)
	sfx := sound.NewPlayer()
	sfx.Subscribe(game.EventDispatcher)

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game, sfx))
	} else {
		sm.SetState(state.NewMenuState(sm, game, sfx))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Territory")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
