// internal/system/secure.go
package system

import (
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/types"
)

// SecureSystem обновляет зоны захвата и удаляет отработавшие объекты
type SecureSystem struct {
	ecs *entity.ECS
}

func NewSecureSystem(ecs *entity.ECS) *SecureSystem {
	return &SecureSystem{ecs: ecs}
}

func (s *SecureSystem) Update(deltaTime float64) {
	var done []types.EntityID
	for id, securable := range s.ecs.Securables {
		securable.Zone.Update(deltaTime)
		if securable.Zone.Done() {
			done = append(done, id)
		}
	}
	for _, id := range done {
		s.ecs.RemoveEntity(id)
	}
}

// Clear снимает подсветку всех зон и удаляет их сущности
func (s *SecureSystem) Clear() {
	for id, securable := range s.ecs.Securables {
		securable.Zone.Dispose()
		s.ecs.RemoveEntity(id)
	}
}
