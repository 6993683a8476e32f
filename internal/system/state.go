// internal/system/state.go
package system

import (
	"go-hex-territory/internal/component"
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/event"
)

// StateSystem ведёт фазу забега и игровое время
type StateSystem struct {
	ecs *entity.ECS
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		s.ecs.GameState.Phase = component.OverPhase
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	if s.ecs.GameState.Phase == component.PlayingPhase {
		s.ecs.GameState.Time += deltaTime
	}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.GameState.Phase
}
