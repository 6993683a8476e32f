// internal/app/commands.go
package app

import (
	"log/slog"

	"go-hex-territory/internal/component"
	"go-hex-territory/internal/event"
	"go-hex-territory/pkg/hexmap"
)

const hitFlashDuration = 0.3

// MoveByIndex шаг к соседу 0..5 (N, NE, SE, S, SW, NW)
func (g *Game) MoveByIndex(dir int) bool {
	if g.IsOver() {
		return false
	}
	return g.Walker.MoveByIndex(dir)
}

// MoveByPath движение по явному списку клеток, обрезается на первой неверной
func (g *Game) MoveByPath(path []hexmap.Hex) int {
	if g.IsOver() {
		return 0
	}
	return g.Walker.MoveByPath(path)
}

// MoveToward до steps шагов в направлении соседа, ближайшем к мировой точке (x, y).
func (g *Game) MoveToward(x, y float64, steps int) int {
	if g.IsOver() || g.Walker.IsMoving() {
		return 0
	}
	from := g.Walker.Hex()
	dir, ok := g.HexMap.Layout().DirectionToward(from, x, y)
	if !ok {
		return 0
	}
	return g.Walker.MoveByPath(g.HexMap.Ray(from, dir, steps))
}

// RouteTo кратчайший путь до target
func (g *Game) RouteTo(target hexmap.Hex) int {
	if g.IsOver() || g.Walker.IsMoving() {
		return 0
	}
	route := hexmap.AStar(g.Walker.Hex(), target, g.HexMap)
	if len(route) < 2 {
		return 0
	}
	return g.Walker.MoveByPath(route[1:])
}

// ExtendTrace добавляет клетку к протягиваемому пути. Пропуски между
// несоседними клетками заполняются кратчайшим маршрутом.
func (g *Game) ExtendTrace(trace []hexmap.Hex, h hexmap.Hex) []hexmap.Hex {
	last := g.Walker.Hex()
	if len(trace) > 0 {
		last = trace[len(trace)-1]
	}
	if h == last || !g.HexMap.IsInBounds(h) {
		return trace
	}
	if last.IsAdjacent(h) {
		return append(trace, h)
	}
	route := hexmap.AStar(last, h, g.HexMap)
	if len(route) < 2 {
		return trace
	}
	return append(trace, route[1:]...)
}

// Hit удар по игроку от источника в мировой точке. Во время неуязвимости
// игнорируется. Прерывает движение и отбрасывает игрока от источника.
func (g *Game) Hit(sourceX, sourceY float64) bool {
	player := g.Player()
	if player == nil || g.IsOver() || player.IsInvincible() {
		return false
	}
	player.HP--
	player.Invincible = g.Settings.Player.Invincibility
	g.ECS.DamageFlashes[g.PlayerID] = &component.DamageFlash{Duration: hitFlashDuration}
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitInfo{HP: player.HP}})

	px, py := g.Walker.Position()
	hx, hy := g.HexMap.HexToWorld(g.Walker.Hex())
	dir, ok := g.HexMap.Layout().DirectionToward(g.Walker.Hex(), hx+(px-sourceX), hy+(py-sourceY))
	if !ok || !g.Walker.Knockback(dir) {
		g.Walker.Cancel()
	}
	slog.Debug("player hit", "hp", player.HP)

	if player.HP <= 0 {
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverInfo{Score: player.Score}})
	}
	return true
}

// HitFrom удар со стороны соседней клетки в направлении d
func (g *Game) HitFrom(d hexmap.Direction) bool {
	x, y := g.HexMap.HexToWorld(g.Walker.Hex().Neighbor(d))
	return g.Hit(x, y)
}
