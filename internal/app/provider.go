// internal/app/provider.go
package app

import (
	"image/color"
	"sort"

	"go-hex-territory/internal/interfaces"
	"go-hex-territory/internal/secure"
	"go-hex-territory/internal/system"
	"go-hex-territory/internal/types"
	"go-hex-territory/pkg/hexmap"
)

var (
	_ secure.GridProvider     = (*Game)(nil)
	_ system.SpawnGameContext = (*Game)(nil)
	_ interfaces.Session      = (*Game)(nil)
)

func (g *Game) WorldToHex(x, y float64) hexmap.Hex {
	return g.HexMap.WorldToHex(x, y)
}

func (g *Game) HexToWorld(h hexmap.Hex) (x, y float64) {
	return g.HexMap.HexToWorld(h)
}

// CurrentPlayerHex клетка под текущей мировой позицией игрока,
// посреди шага она меняется на середине пути.
func (g *Game) CurrentPlayerHex() hexmap.Hex {
	return g.HexMap.WorldToHex(g.Walker.Position())
}

func (g *Game) IsInBounds(h hexmap.Hex) bool {
	return g.HexMap.IsInBounds(h)
}

func (g *Game) GetHexMap() *hexmap.HexMap {
	return g.HexMap
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// Чтение для фронтендов (interfaces.GameContext).

// PlayerHex последняя клетка, в которую игрок полностью вошёл
func (g *Game) PlayerHex() hexmap.Hex {
	return g.Walker.Hex()
}

func (g *Game) PlayerPosition() (x, y float64) {
	return g.Walker.Position()
}

// PlannedPath текущая цель и оставшаяся очередь шагов
func (g *Game) PlannedPath() []hexmap.Hex {
	var path []hexmap.Hex
	if target, ok := g.Walker.Target(); ok {
		path = append(path, target)
	}
	return append(path, g.Walker.Queue()...)
}

func (g *Game) HighlightColor(h hexmap.Hex) (color.RGBA, bool) {
	return g.Highlighter.Color(h)
}
