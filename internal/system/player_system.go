// internal/system/player_system.go
package system

import (
	"go-hex-territory/internal/component"
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/event"
	"go-hex-territory/internal/utils"
)

// PlayerSystem начисляет очки за захваты и ведёт таймер неуязвимости.
type PlayerSystem struct {
	ecs       *entity.ECS
	zoneScore int
}

func NewPlayerSystem(ecs *entity.ECS, zoneScore int) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, zoneScore: zoneScore}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	playerState := s.player()
	if playerState == nil {
		return
	}
	switch e.Type {
	case event.TerritoryCaptured:
		capture, ok := e.Data.(event.TerritoryCapture)
		if !ok {
			return
		}
		playerState.Score += capture.Size
		playerState.Captures++
		playerState.CapturedCells += capture.Size
	case event.ZoneSecured:
		playerState.Score += s.zoneScore
		playerState.ZonesSecured++
		playerState.HP++ // объект лечит
	}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	if playerState := s.player(); playerState != nil {
		playerState.Invincible = utils.Approach(playerState.Invincible, 0, deltaTime)
	}
}

// player находит компонент состояния игрока. Предполагаем, что он только один.
func (s *PlayerSystem) player() *component.PlayerStateComponent {
	for _, playerState := range s.ecs.PlayerState {
		return playerState
	}
	return nil
}
