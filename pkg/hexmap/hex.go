// pkg/hexmap/hex.go
package hexmap

import (
	"errors"
	"fmt"
	"strings"

	"go-hex-territory/pkg/utils"
)

// Hex представляет гекс в offset-координатах (odd-q, flat-top).
// Нечётные колонки сдвинуты на половину высоты гекса.
type Hex struct {
	Col, Row int
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Col, h.Row)
}

// Direction индекс соседа 0..5, в порядке Neighbors.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// DirectionCount количество направлений у гекса
const DirectionCount = 6

var ErrUnknownDirection = errors.New("unknown hex direction")

var directionNames = [DirectionCount]string{"N", "NE", "SE", "S", "SW", "NW"}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid сообщает, лежит ли индекс в диапазоне 0..5.
func (d Direction) Valid() bool {
	return d >= 0 && d < DirectionCount
}

// ParseDirection принимает короткое имя (N, NE, SE, S, SW, NW) без учёта регистра.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Смещения соседей для чётных и нечётных колонок.
// Индекс совпадает с Direction.
var evenColumnOffsets = [DirectionCount]Hex{
	{0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0},
}

var oddColumnOffsets = [DirectionCount]Hex{
	{0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1},
}

// IsOddColumn учитывает отрицательные колонки.
func (h Hex) IsOddColumn() bool {
	return h.Col&1 == 1
}

// Neighbors возвращает всех шестерых соседей, включая выходящих за карту.
func (h Hex) Neighbors() [DirectionCount]Hex {
	offsets := &evenColumnOffsets
	if h.IsOddColumn() {
		offsets = &oddColumnOffsets
	}
	var result [DirectionCount]Hex
	for i, o := range offsets {
		result[i] = h.Add(o)
	}
	return result
}

// Neighbor возвращает соседа в направлении d. Для неверного d возвращает сам гекс.
func (h Hex) Neighbor(d Direction) Hex {
	if !d.Valid() {
		return h
	}
	return h.Neighbors()[d]
}

// DirectionTo находит направление к соседнему гексу.
func (h Hex) DirectionTo(other Hex) (Direction, bool) {
	for i, n := range h.Neighbors() {
		if n == other {
			return Direction(i), true
		}
	}
	return 0, false
}

// IsAdjacent проверяет, являются ли гексы соседями
func (h Hex) IsAdjacent(other Hex) bool {
	_, ok := h.DirectionTo(other)
	return ok
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Col: h.Col + other.Col, Row: h.Row + other.Row}
}

// Distance считает расстояние через кубические разности по колонке и ряду.
// Используется только для проверок безопасности спавна.
func (h Hex) Distance(to Hex) int {
	dx := h.Col - to.Col
	dy := h.Row - to.Row
	dz := (h.Col + h.Row) - (to.Col + to.Row)
	return (utils.Abs(dx) + utils.Abs(dy) + utils.Abs(dz)) / 2
}

// StepDistance точное число шагов между гексами по сетке odd-q.
func (h Hex) StepDistance(to Hex) int {
	aq, ar := h.axial()
	bq, br := to.axial()
	dq := aq - bq
	dr := ar - br
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

func (h Hex) axial() (q, r int) {
	return h.Col, h.Row - (h.Col-(h.Col&1))/2
}
