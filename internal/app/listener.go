// internal/app/listener.go
package app

import (
	"log/slog"

	"go-hex-territory/internal/event"
)

// GameEventListener пишет в лог заметные события забега
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TerritoryCaptured:
		if c, ok := e.Data.(event.TerritoryCapture); ok {
			slog.Info("territory captured", "cells", c.Size)
		}
	case event.ZoneSecured:
		if z, ok := e.Data.(event.ZoneSecure); ok {
			slog.Info("zone secured", "anchor", z.Anchor)
		}
	case event.GameOver:
		stats := l.game.Stats()
		slog.Info("game over", "score", stats.Score, "time", stats.Time, "captured", stats.CapturedCells)
	}
}
