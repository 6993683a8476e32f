// internal/entity/ecs.go
package entity

import (
	"go-hex-territory/internal/component"
	"go-hex-territory/internal/types"
)

type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Securables    map[types.EntityID]*component.Securable
	PlayerState   map[types.EntityID]*component.PlayerStateComponent
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Securables:    make(map[types.EntityID]*component.Securable),
		PlayerState:   make(map[types.EntityID]*component.PlayerStateComponent),
		GameState:     &component.GameState{Phase: component.PlayingPhase},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Securables, id)
	delete(ecs.PlayerState, id)
}
