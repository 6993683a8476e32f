// internal/termview/layout.go
package termview

import "go-hex-territory/pkg/hexmap"

const (
	// CellCols ширина клетки в символах, сама метка занимает три
	CellCols = 4
	// CellRows высота клетки в строках. Нечётные колонки подняты на строку.
	CellRows = 2
)

// CellOrigin левая верхняя позиция метки клетки внутри поля.
// Мировая ось Y смотрит вверх, поэтому ряд 0 внизу.
func CellOrigin(h hexmap.Hex, gridHeight int) (x, y int) {
	x = h.Col * CellCols
	y = (gridHeight-1-h.Row)*CellRows + 1 - (h.Col & 1)
	return x, y
}

// BoardSize размер поля в символах
func BoardSize(gridWidth, gridHeight int) (w, h int) {
	return gridWidth*CellCols - 1, gridHeight * CellRows
}
