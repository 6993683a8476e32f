package entity

import (
	"testing"

	"go-hex-territory/internal/component"
)

func TestNewEntityIDsAreSequential(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a, b)
	}
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1}
	ecs.Securables[id] = &component.Securable{}
	ecs.DamageFlashes[id] = &component.DamageFlash{Duration: 1}
	ecs.RemoveEntity(id)
	if len(ecs.Positions)+len(ecs.Securables)+len(ecs.DamageFlashes) != 0 {
		t.Fatalf("components left after RemoveEntity")
	}
}
