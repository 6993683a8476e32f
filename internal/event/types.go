// internal/event/types.go
package event

import "go-hex-territory/pkg/hexmap"

const (
	TerritoryCaptured EventType = "TerritoryCaptured" // Замкнутая область захвачена
	ZoneSecured       EventType = "ZoneSecured"       // Все три клетки зоны посещены вовремя
	ZoneExpired       EventType = "ZoneExpired"       // Таймер зоны истёк
	ZoneSpawned       EventType = "ZoneSpawned"
	PlayerHit         EventType = "PlayerHit"
	GameOver          EventType = "GameOver"
)

// TerritoryCapture данные TerritoryCaptured
type TerritoryCapture struct {
	Cells []hexmap.Hex
	Size  int
}

// ZoneSecure данные ZoneSecured, X и Y в мировых координатах
type ZoneSecure struct {
	Anchor hexmap.Hex
	X, Y   float64
}

type ZoneExpire struct {
	Anchor hexmap.Hex
}

type ZoneSpawn struct {
	Anchor hexmap.Hex
}

type PlayerHitInfo struct {
	HP int
}

type GameOverInfo struct {
	Score int
}
