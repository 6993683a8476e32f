// internal/secure/provider.go
package secure

import (
	"image/color"

	"go-hex-territory/pkg/hexmap"
)

// GridProvider даёт зоне доступ к координатам сетки и позиции игрока.
type GridProvider interface {
	WorldToHex(x, y float64) hexmap.Hex
	HexToWorld(h hexmap.Hex) (x, y float64)
	CurrentPlayerHex() hexmap.Hex
}

// boundsChecker необязательная возможность провайдера.
// Если она есть, зона старается выбирать клетки внутри сетки.
type boundsChecker interface {
	IsInBounds(h hexmap.Hex) bool
}

// Highlighter раскрашивает клетки независимо от их игрового состояния.
type Highlighter interface {
	SetColor(h hexmap.Hex, c color.RGBA)
	ClearMany(hexes []hexmap.Hex)
}

// Rand источник случайных индексов для добора направлений
type Rand interface {
	Intn(n int) int
}

type noopHighlighter struct{}

func (noopHighlighter) SetColor(hexmap.Hex, color.RGBA) {}
func (noopHighlighter) ClearMany([]hexmap.Hex)          {}
