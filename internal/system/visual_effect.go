// internal/system/visual_effect.go
package system

import (
	"math"

	"go-hex-territory/internal/entity"
)

const (
	pulseFrequency = 2.0  // Гц
	pulseAmplitude = 0.18 // доля базового радиуса
)

// VisualEffectSystem ведёт вспышки урона и пульсацию якорей с запущенным таймером.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, securable := range s.ecs.Securables {
		render, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		_, running := securable.Zone.TimeLeft()
		render.Pulsing = running
	}

	for _, render := range s.ecs.Renderables {
		if !render.Pulsing {
			render.Phase = 0
			render.Radius = render.BaseRadius
			continue
		}
		render.Phase += deltaTime
		wave := math.Sin(render.Phase * 2 * math.Pi * pulseFrequency)
		render.Radius = render.BaseRadius * float32(1+pulseAmplitude*wave)
	}
}
