// cmd/game_tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go-hex-territory/internal/app"
	"go-hex-territory/internal/config"
	"go-hex-territory/internal/report"
	"go-hex-territory/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file (defaults to $CONFIG_PATH)")
	flag.Parse()

	settings, err := config.Resolve(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// терминал занят игрой, логи уходят в файл
	logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()
	config.SetupLogger(logFile, settings.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}

	game := app.NewGame(settings)
	termview.Run(screen, game, config.MaxDeltaTime)
	screen.Fini()

	summary := report.Summary(game.Stats())
	slog.Info("session finished", "score", game.Stats().Score)
	fmt.Print(summary)
}
