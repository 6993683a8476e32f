// internal/system/spawn.go
package system

import (
	"log/slog"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/types"
	"go-hex-territory/internal/utils"
	"go-hex-territory/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// SpawnGameContext определяет методы, которые SpawnSystem требует от Game.
type SpawnGameContext interface {
	GetHexMap() *hexmap.HexMap
	CurrentPlayerHex() hexmap.Hex
	SpawnZone(anchor hexmap.Hex) types.EntityID
}

// SpawnSystem по таймеру размещает объекты с зонами захвата
type SpawnSystem struct {
	ecs      *entity.ECS
	game     SpawnGameContext
	rng      *utils.PRNGService
	settings config.SpawnSettings
	timer    float64
}

func NewSpawnSystem(ecs *entity.ECS, game SpawnGameContext, rng *utils.PRNGService, settings config.SpawnSettings) *SpawnSystem {
	return &SpawnSystem{
		ecs:      ecs,
		game:     game,
		rng:      rng,
		settings: settings,
		timer:    settings.InitialDelay,
	}
}

// Reset перезапускает таймер (рестарт)
func (s *SpawnSystem) Reset() {
	s.timer = s.settings.InitialDelay
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer -= deltaTime
	if s.timer > 0 {
		return
	}
	s.timer = s.settings.Interval
	if len(s.ecs.Securables) >= s.settings.MaxZones {
		return
	}
	anchor, ok := s.PickAnchor()
	if !ok {
		slog.Debug("no free cell for a securable object")
		return
	}
	s.game.SpawnZone(anchor)
}

// PickAnchor выбирает клетку, у которой все соседи на карте, далеко от игрока
// и не занятую другим объектом. На маленьких картах условия ослабляются.
func (s *SpawnSystem) PickAnchor() (hexmap.Hex, bool) {
	hm := s.game.GetHexMap()
	player := s.game.CurrentPlayerHex()

	occupied := mapset.New[hexmap.Hex]()
	occupied.Put(player)
	for _, securable := range s.ecs.Securables {
		occupied.Put(securable.Zone.Anchor())
	}

	var interior, fallback []hexmap.Hex
	for _, h := range hm.Hexes() {
		if occupied.Has(h) {
			continue
		}
		if hm.IsInterior(h) && h.Distance(player) >= s.settings.MinDistance {
			interior = append(interior, h)
		} else {
			fallback = append(fallback, h)
		}
	}
	candidates := interior
	if len(candidates) == 0 {
		candidates = fallback
	}
	if len(candidates) == 0 {
		return hexmap.Hex{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
