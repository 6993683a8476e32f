// internal/system/movement.go
package system

import (
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/movement"
	"go-hex-territory/internal/types"
)

// MovementSystem продвигает игрока по клеткам и синхронизирует его позицию в ECS
type MovementSystem struct {
	ecs        *entity.ECS
	walker     *movement.Walker
	playerID   types.EntityID
	lastStatus movement.Status
}

func NewMovementSystem(ecs *entity.ECS, walker *movement.Walker, playerID types.EntityID) *MovementSystem {
	return &MovementSystem{ecs: ecs, walker: walker, playerID: playerID}
}

// SetPlayer меняет сущность игрока после рестарта
func (s *MovementSystem) SetPlayer(id types.EntityID) {
	s.playerID = id
	s.sync()
}

func (s *MovementSystem) Update(deltaTime float64) movement.Status {
	s.lastStatus = s.walker.Tick(deltaTime)
	s.sync()
	return s.lastStatus
}

func (s *MovementSystem) LastStatus() movement.Status {
	return s.lastStatus
}

func (s *MovementSystem) sync() {
	if pos, ok := s.ecs.Positions[s.playerID]; ok {
		pos.Set(s.walker.Position())
	}
}
