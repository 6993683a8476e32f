// internal/app/game_test.go
package app

import (
	"testing"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/event"
	"go-hex-territory/pkg/hexmap"
)

const tick = 0.25

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := config.Default()
	s.Seed = 7
	s.Spawn.InitialDelay = 1000
	s.Spawn.Interval = 1000
	return NewGame(s)
}

func settle(g *Game) {
	for i := 0; i < 40 && g.Walker.IsMoving(); i++ {
		g.Update(tick)
	}
}

func TestNewGameStartsAtCenter(t *testing.T) {
	g := newTestGame(t)
	if got, want := g.PlayerHex(), (hexmap.Hex{Col: 4, Row: 4}); got != want {
		t.Fatalf("start hex: got %v, want %v", got, want)
	}
	p := g.Player()
	if p == nil || p.HP != 3 || p.MaxHP != 3 {
		t.Fatalf("player state: got %+v, want HP 3/3", p)
	}
	if g.IsOver() {
		t.Fatal("new game should not be over")
	}
	if g.CurrentPlayerHex() != g.PlayerHex() {
		t.Fatalf("idle player: world hex %v differs from walker hex %v", g.CurrentPlayerHex(), g.PlayerHex())
	}
}

func TestRingCaptureScores(t *testing.T) {
	g := newTestGame(t)
	var captured []event.TerritoryCapture
	g.EventDispatcher.SubscribeFunc(event.TerritoryCaptured, func(e event.Event) {
		captured = append(captured, e.Data.(event.TerritoryCapture))
	})

	// обход вокруг (4,5) с возвратом в стартовую клетку
	ring := []hexmap.Hex{{Col: 5, Row: 4}, {Col: 5, Row: 5}, {Col: 4, Row: 6}, {Col: 3, Row: 5}, {Col: 3, Row: 4}, {Col: 4, Row: 4}}
	if n := g.MoveByPath(ring); n != len(ring) {
		t.Fatalf("accepted %d steps, want %d", n, len(ring))
	}
	settle(g)

	if len(captured) != 1 || captured[0].Size != 1 {
		t.Fatalf("captures: got %+v, want one capture of size 1", captured)
	}
	if st, _ := g.HexMap.State(hexmap.Hex{Col: 4, Row: 5}); st != hexmap.Captured {
		t.Fatalf("enclosed cell state: got %v, want Captured", st)
	}
	if n := g.HexMap.Count(hexmap.Trail); n != 0 {
		t.Fatalf("trail cells after capture: got %d, want 0", n)
	}
	p := g.Player()
	if p.Score != 1 || p.Captures != 1 || p.CapturedCells != 1 {
		t.Fatalf("player after capture: got %+v", p)
	}
}

func TestMoveTowardClickPoint(t *testing.T) {
	g := newTestGame(t)
	x, y := g.HexToWorld(hexmap.Hex{Col: 4, Row: 8})
	if n := g.MoveToward(x, y, config.ClickStepsShift); n != 3 {
		t.Fatalf("steps toward north: got %d, want 3", n)
	}
	settle(g)
	if got, want := g.PlayerHex(), (hexmap.Hex{Col: 4, Row: 7}); got != want {
		t.Fatalf("after shift-click: got %v, want %v", got, want)
	}
	// у края сетки путь обрезается
	if n := g.MoveToward(x, y+10, config.ClickStepsShift); n != 1 {
		t.Fatalf("steps near the edge: got %d, want 1", n)
	}
}

func TestRouteTo(t *testing.T) {
	g := newTestGame(t)
	target := hexmap.Hex{Col: 7, Row: 2}
	n := g.RouteTo(target)
	if want := g.PlayerHex().StepDistance(target); n != want {
		t.Fatalf("route length: got %d, want %d", n, want)
	}
	if g.RouteTo(target) != 0 {
		t.Fatal("route while moving should be rejected")
	}
	settle(g)
	if g.PlayerHex() != target {
		t.Fatalf("route end: got %v, want %v", g.PlayerHex(), target)
	}
	if g.RouteTo(hexmap.Hex{Col: 20, Row: 20}) != 0 {
		t.Fatal("route outside the grid should be rejected")
	}
}

func TestExtendTraceFillsGaps(t *testing.T) {
	g := newTestGame(t)
	trace := g.ExtendTrace(nil, hexmap.Hex{Col: 4, Row: 5})
	trace = g.ExtendTrace(trace, hexmap.Hex{Col: 4, Row: 5})
	trace = g.ExtendTrace(trace, hexmap.Hex{Col: 4, Row: 7})
	trace = g.ExtendTrace(trace, hexmap.Hex{Col: -1, Row: 7})

	want := []hexmap.Hex{{Col: 4, Row: 5}, {Col: 4, Row: 6}, {Col: 4, Row: 7}}
	if len(trace) != len(want) {
		t.Fatalf("trace: got %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace[%d]: got %v, want %v", i, trace[i], want[i])
		}
	}
}

func TestHitKnocksBackAndGrantsInvincibility(t *testing.T) {
	g := newTestGame(t)
	var hits int
	g.EventDispatcher.SubscribeFunc(event.PlayerHit, func(event.Event) { hits++ })

	g.MoveByIndex(int(hexmap.North))
	g.Update(0.1)
	if !g.HitFrom(hexmap.North) {
		t.Fatal("first hit should land")
	}
	if g.HitFrom(hexmap.North) {
		t.Fatal("hit during invincibility should be ignored")
	}
	if p := g.Player(); p.HP != 2 || !p.IsInvincible() {
		t.Fatalf("after hit: got %+v", p)
	}
	if hits != 1 {
		t.Fatalf("hit events: got %d, want 1", hits)
	}
	if !g.Walker.IsKnockback() {
		t.Fatal("expected knockback segment")
	}
	settle(g)
	if got, want := g.PlayerHex(), (hexmap.Hex{Col: 4, Row: 3}); got != want {
		t.Fatalf("after knockback: got %v, want %v", got, want)
	}
	if n := g.HexMap.Count(hexmap.Trail); n != 0 {
		t.Fatalf("aborted walk left %d trail cells", n)
	}
}

func TestGameOverStopsTheRun(t *testing.T) {
	g := newTestGame(t)
	var over int
	g.EventDispatcher.SubscribeFunc(event.GameOver, func(event.Event) { over++ })

	for i := 0; i < 3; i++ {
		g.Player().Invincible = 0
		g.HitFrom(hexmap.South)
		settle(g)
	}
	if !g.IsOver() || over != 1 {
		t.Fatalf("game over: over=%v events=%d", g.IsOver(), over)
	}
	elapsed := g.GetGameTime()
	g.Update(1)
	if g.GetGameTime() != elapsed {
		t.Fatal("time should stop after game over")
	}
	if g.MoveByIndex(0) {
		t.Fatal("moves should be rejected after game over")
	}
	g.Player().Invincible = 0
	if g.HitFrom(hexmap.South) {
		t.Fatal("hits should be ignored after game over")
	}
}

func TestSecureZoneThroughGame(t *testing.T) {
	g := newTestGame(t)
	var spawned, secured int
	g.EventDispatcher.SubscribeFunc(event.ZoneSpawned, func(event.Event) { spawned++ })
	g.EventDispatcher.SubscribeFunc(event.ZoneSecured, func(event.Event) { secured++ })

	g.SpawnZone(hexmap.Hex{Col: 4, Row: 6})
	zones := g.Zones()
	if len(zones) != 1 || spawned != 1 {
		t.Fatalf("zones after spawn: got %d (events %d), want 1", len(zones), spawned)
	}
	zone := zones[0]

	for _, h := range zone.RequiredHexes() {
		for attempt := 0; attempt < 5 && g.PlayerHex() != h; attempt++ {
			g.RouteTo(h)
			settle(g)
		}
	}
	if secured != 1 {
		t.Fatalf("zone secured events: got %d, want 1", secured)
	}
	p := g.Player()
	if p.ZonesSecured != 1 || p.HP != 4 || p.Score < g.Settings.Secure.Score {
		t.Fatalf("player after securing: got %+v", p)
	}

	g.Update(tick)
	g.Update(tick)
	if len(g.Zones()) != 0 {
		t.Fatal("secured zone should be removed after the capture effect")
	}
	if g.Highlighter.Len() != 0 {
		t.Fatalf("highlights left after removal: %d", g.Highlighter.Len())
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(t)
	ring := []hexmap.Hex{{Col: 5, Row: 4}, {Col: 5, Row: 5}, {Col: 4, Row: 6}, {Col: 3, Row: 5}, {Col: 3, Row: 4}, {Col: 4, Row: 4}}
	g.MoveByPath(ring)
	settle(g)
	g.SpawnZone(hexmap.Hex{Col: 1, Row: 1})
	g.Player().Invincible = 0
	g.HitFrom(hexmap.North)

	g.Restart()

	if n := g.HexMap.Count(hexmap.Captured); n != 0 {
		t.Fatalf("captured cells after restart: %d", n)
	}
	if len(g.Zones()) != 0 || g.Highlighter.Len() != 0 {
		t.Fatal("zones and highlights should be cleared")
	}
	p := g.Player()
	if p == nil || p.HP != 3 || p.Score != 0 {
		t.Fatalf("player after restart: got %+v", p)
	}
	if g.PlayerHex() != g.HexMap.Center() || g.Walker.IsMoving() {
		t.Fatalf("player should stand still at the center, got %v", g.PlayerHex())
	}
	if len(g.ECS.PlayerState) != 1 {
		t.Fatalf("player entities: got %d, want 1", len(g.ECS.PlayerState))
	}
	if g.Territory.Captures() != 0 {
		t.Fatal("territory counters should reset")
	}
}

func TestStatsMirrorsPlayer(t *testing.T) {
	g := newTestGame(t)
	g.Player().Score = 5
	s := g.Stats()
	if s.Score != 5 || s.HP != 3 || s.GridWidth != 9 || s.GridHeight != 9 || s.Seed != 7 {
		t.Fatalf("stats: got %+v", s)
	}
}
