// internal/interfaces/game_context.go
package interfaces

import (
	"image/color"

	"go-hex-territory/internal/report"
	"go-hex-territory/internal/secure"
	"go-hex-territory/pkg/hexmap"
)

// GameContext то, что фронтенд читает для отрисовки
type GameContext interface {
	GetHexMap() *hexmap.HexMap
	PlayerHex() hexmap.Hex
	PlayerPosition() (x, y float64)
	PlannedPath() []hexmap.Hex
	HighlightColor(h hexmap.Hex) (color.RGBA, bool)
	Zones() []*secure.Zone
	Stats() report.Stats
	IsOver() bool
}

// Session полный контракт забега для фронтенда
type Session interface {
	Game
	GameContext
}
