// internal/app/game.go
package app

import (
	"log/slog"

	"go-hex-territory/internal/component"
	"go-hex-territory/internal/config"
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/event"
	"go-hex-territory/internal/highlight"
	"go-hex-territory/internal/movement"
	"go-hex-territory/internal/report"
	"go-hex-territory/internal/secure"
	"go-hex-territory/internal/system"
	"go-hex-territory/internal/territory"
	"go-hex-territory/internal/types"
	"go-hex-territory/internal/utils"
	"go-hex-territory/pkg/hexmap"
)

// Game контекст одного забега: одна сетка, один игрок, зоны и системы.
type Game struct {
	Settings           *config.Settings
	HexMap             *hexmap.HexMap
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Highlighter        *highlight.Highlighter
	Territory          *territory.Engine
	Walker             *movement.Walker
	MovementSystem     *system.MovementSystem
	SecureSystem       *system.SecureSystem
	SpawnSystem        *system.SpawnSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerID           types.EntityID

	zoneConfig secure.Config
}

// NewGame собирает игру по настройкам. nil означает настройки по умолчанию.
func NewGame(settings *config.Settings) *Game {
	if settings == nil {
		settings = config.Default()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	hexMap := hexmap.NewHexMap(settings.Grid.Width, settings.Grid.Height)

	g := &Game{
		Settings:        settings,
		HexMap:          hexMap,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
		Highlighter:     highlight.NewHighlighter(),
	}
	g.Territory = territory.NewEngine(hexMap, eventDispatcher)
	g.Walker = movement.NewWalker(hexMap, g.Territory, movement.Config{
		StepDuration:      settings.Player.StepDuration,
		KnockbackDuration: settings.Player.KnockbackDuration,
	})
	g.zoneConfig = zoneConfig(settings)

	g.MovementSystem = system.NewMovementSystem(ecs, g.Walker, 0)
	g.SecureSystem = system.NewSecureSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, g, g.Rng, settings.Spawn)
	g.PlayerSystem = system.NewPlayerSystem(ecs, settings.Secure.Score)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	eventDispatcher.Subscribe(event.TerritoryCaptured, g.PlayerSystem)
	eventDispatcher.Subscribe(event.ZoneSecured, g.PlayerSystem)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.TerritoryCaptured, listener)
	eventDispatcher.Subscribe(event.ZoneSecured, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	g.createPlayerEntity()
	slog.Info("game created", "width", hexMap.Width, "height", hexMap.Height, "seed", g.Rng.Seed())
	return g
}

func zoneConfig(settings *config.Settings) secure.Config {
	dirs, err := settings.Secure.Directions()
	if err != nil {
		slog.Warn("ignoring unknown required directions", "err", err)
	}
	return secure.Config{
		RequiredDirs:   dirs,
		SecureWindow:   settings.Secure.Window,
		CaptureFxDelay: settings.Secure.CaptureFxDelay,
		ProgressColor:  config.ProgressColor,
		DoneColor:      config.DoneColor,
	}
}

func (g *Game) createPlayerEntity() {
	start := g.HexMap.Center()
	g.Walker.Place(start)
	x, y := g.Walker.Position()

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Renderables[id] = component.NewRenderable(config.PlayerColor, config.PlayerRadius, true)
	g.ECS.PlayerState[id] = &component.PlayerStateComponent{
		HP:    g.Settings.Player.HP,
		MaxHP: g.Settings.Player.HP,
	}
	g.PlayerID = id
	g.MovementSystem.SetPlayer(id)
}

// Update один игровой тик. Порядок: движение, зоны, спавн, игрок, эффекты.
func (g *Game) Update(deltaTime float64) {
	if g.IsOver() {
		return
	}
	g.StateSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.SecureSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// Restart полностью пересоздаёт сетку из настроек и сбрасывает забег.
func (g *Game) Restart() {
	g.Walker.Cancel()
	g.SecureSystem.Clear()
	g.ECS.RemoveEntity(g.PlayerID)
	g.ECS.GameState = &component.GameState{Phase: component.PlayingPhase}

	g.HexMap.GenerateGrid(g.Settings.Grid.Width, g.Settings.Grid.Height)
	g.Territory.Reset()
	g.Highlighter.ClearAll()
	g.SpawnSystem.Reset()
	g.createPlayerEntity()
	slog.Info("game restarted")
}

// SpawnZone размещает объект с зоной захвата в клетке anchor.
func (g *Game) SpawnZone(anchor hexmap.Hex) types.EntityID {
	x, y := g.HexMap.HexToWorld(anchor)
	zone := secure.NewZone(x, y, g.zoneConfig, g, g.Highlighter, g.Rng, g.EventDispatcher)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Renderables[id] = component.NewRenderable(config.AnchorColor, config.AnchorRadius, false)
	g.ECS.Securables[id] = &component.Securable{Zone: zone}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ZoneSpawned, Data: event.ZoneSpawn{Anchor: anchor}})
	return id
}

// Player состояние игрока или nil
func (g *Game) Player() *component.PlayerStateComponent {
	return g.ECS.PlayerState[g.PlayerID]
}

func (g *Game) IsOver() bool {
	return g.ECS.GameState.Phase == component.OverPhase
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameState.Time
}

// Zones активные зоны в порядке создания
func (g *Game) Zones() []*secure.Zone {
	ids := make([]types.EntityID, 0, len(g.ECS.Securables))
	for id := range g.ECS.Securables {
		ids = append(ids, id)
	}
	sortIDs(ids)
	zones := make([]*secure.Zone, 0, len(ids))
	for _, id := range ids {
		zones = append(zones, g.ECS.Securables[id].Zone)
	}
	return zones
}

// Stats сводка забега
func (g *Game) Stats() report.Stats {
	s := report.Stats{
		Time:       g.GetGameTime(),
		GridWidth:  g.HexMap.Width,
		GridHeight: g.HexMap.Height,
		Seed:       g.Rng.Seed(),
		Over:       g.IsOver(),
	}
	if p := g.Player(); p != nil {
		s.Score = p.Score
		s.HP = p.HP
		s.ZonesSecured = p.ZonesSecured
		s.Captures = p.Captures
		s.CapturedCells = p.CapturedCells
	}
	return s
}
