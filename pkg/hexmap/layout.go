// pkg/hexmap/layout.go
package hexmap

import "math"

const (
	// CellWidth ширина flat-top гекса в мировых единицах
	CellWidth = 1.0
	// CellHeight высота гекса, sqrt(3)/2 * ширина
	CellHeight = Sqrt3 / 2 * CellWidth
	// columnStep горизонтальный шаг между центрами колонок
	columnStep = 0.75 * CellWidth
)

// Layout переводит координаты сетки width x height в мировые и обратно.
// Центр сетки совпадает с началом мировых координат.
type Layout struct {
	Width, Height int
}

func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// Origin возвращает мировое смещение гекса (0,0)
func (l Layout) Origin() (offsetX, offsetY float64) {
	offsetX = -columnStep * float64(l.Width-1) / 2
	offsetY = -CellHeight * float64(l.Height-1) / 2
	return
}

// HexToWorld возвращает центр гекса в мировых координатах.
func (l Layout) HexToWorld(h Hex) (x, y float64) {
	offsetX, offsetY := l.Origin()
	x = columnStep*float64(h.Col) + offsetX
	y = CellHeight*(float64(h.Row)+0.5*parity(h.Col)) + offsetY
	return
}

// WorldToHex обратное преобразование с округлением до ближайшего центра.
func (l Layout) WorldToHex(x, y float64) Hex {
	offsetX, offsetY := l.Origin()
	col := roundToInt((x - offsetX) / columnStep)
	row := roundToInt((y - offsetY - CellHeight*0.5*parity(col)) / CellHeight)
	return Hex{Col: col, Row: row}
}

// DirectionToward выбирает направление соседа, мировой вектор которого
// сильнее всего совпадает с направлением на точку (x, y).
func (l Layout) DirectionToward(from Hex, x, y float64) (Direction, bool) {
	fx, fy := l.HexToWorld(from)
	dx, dy := x-fx, y-fy
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return 0, false
	}
	dx, dy = dx/length, dy/length

	best := Direction(0)
	bestDot := math.Inf(-1)
	for i, n := range from.Neighbors() {
		nx, ny := l.HexToWorld(n)
		vx, vy := nx-fx, ny-fy
		vl := math.Hypot(vx, vy)
		dot := (vx*dx + vy*dy) / vl
		if dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best, true
}

// HexToWorld считает центр гекса для сетки заданного размера.
func HexToWorld(h Hex, gridWidth, gridHeight int) (x, y float64) {
	return NewLayout(gridWidth, gridHeight).HexToWorld(h)
}

// WorldToHex находит гекс по мировой точке для сетки заданного размера.
func WorldToHex(x, y float64, gridWidth, gridHeight int) Hex {
	return NewLayout(gridWidth, gridHeight).WorldToHex(x, y)
}
