// pkg/hexmap/map.go
package hexmap

// CellState состояние клетки поля
type CellState int

const (
	Neutral CellState = iota
	Trail
	Captured
)

func (s CellState) String() string {
	switch s {
	case Neutral:
		return "Neutral"
	case Trail:
		return "Trail"
	case Captured:
		return "Captured"
	}
	return "Unknown"
}

// Cell клетка сетки. Координата не меняется после генерации.
type Cell struct {
	Hex   Hex
	State CellState
}

// StateObserver вызывается при каждой смене состояния клетки.
type StateObserver func(h Hex, from, to CellState)

// HexMap прямоугольная сетка width x height в offset-координатах.
// Каждой координате в диапазоне соответствует ровно одна клетка.
type HexMap struct {
	Width, Height int
	Cells         map[Hex]*Cell

	layout    Layout
	order     []Hex
	observers []StateObserver
}

func NewHexMap(width, height int) *HexMap {
	hm := &HexMap{}
	hm.GenerateGrid(width, height)
	return hm
}

// GenerateGrid полностью заменяет сетку новой, все клетки Neutral.
// Наблюдатели сохраняются.
func (hm *HexMap) GenerateGrid(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	hm.Width = width
	hm.Height = height
	hm.layout = NewLayout(width, height)
	hm.Cells = make(map[Hex]*Cell, width*height)
	hm.order = make([]Hex, 0, width*height)
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			h := Hex{Col: col, Row: row}
			hm.Cells[h] = &Cell{Hex: h, State: Neutral}
			hm.order = append(hm.order, h)
		}
	}
}

func (hm *HexMap) Layout() Layout {
	return hm.layout
}

func (hm *HexMap) HexToWorld(h Hex) (x, y float64) {
	return hm.layout.HexToWorld(h)
}

func (hm *HexMap) WorldToHex(x, y float64) Hex {
	return hm.layout.WorldToHex(x, y)
}

// IsInBounds проверяет 0 <= col < width и 0 <= row < height
func (hm *HexMap) IsInBounds(h Hex) bool {
	return h.Col >= 0 && h.Col < hm.Width && h.Row >= 0 && h.Row < hm.Height
}

// Contains проверяет, существует ли клетка
func (hm *HexMap) Contains(h Hex) bool {
	_, ok := hm.Cells[h]
	return ok
}

// GetCell возвращает копию клетки или false за пределами сетки.
func (hm *HexMap) GetCell(h Hex) (Cell, bool) {
	c, ok := hm.Cells[h]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// State возвращает состояние клетки или false за пределами сетки.
func (hm *HexMap) State(h Hex) (CellState, bool) {
	c, ok := hm.Cells[h]
	if !ok {
		return Neutral, false
	}
	return c.State, true
}

// SetState меняет состояние клетки. За пределами сетки ничего не делает.
// Captured здесь не защищён, это обязанность вызывающего кода.
func (hm *HexMap) SetState(h Hex, state CellState) {
	c, ok := hm.Cells[h]
	if !ok || c.State == state {
		return
	}
	from := c.State
	c.State = state
	for _, fn := range hm.observers {
		fn(h, from, state)
	}
}

// OnStateChange подписывает наблюдателя на смену состояний
func (hm *HexMap) OnStateChange(fn StateObserver) {
	hm.observers = append(hm.observers, fn)
}

// Hexes возвращает все координаты по колонкам. Срез не изменять.
func (hm *HexMap) Hexes() []Hex {
	return hm.order
}

// Count считает клетки в заданном состоянии
func (hm *HexMap) Count(state CellState) int {
	n := 0
	for _, c := range hm.Cells {
		if c.State == state {
			n++
		}
	}
	return n
}

// HexesInState возвращает клетки в состоянии state в порядке Hexes
func (hm *HexMap) HexesInState(state CellState) []Hex {
	var result []Hex
	for _, h := range hm.order {
		if hm.Cells[h].State == state {
			result = append(result, h)
		}
	}
	return result
}

// Center центральная клетка сетки
func (hm *HexMap) Center() Hex {
	return Hex{Col: hm.Width / 2, Row: hm.Height / 2}
}

// InBoundsNeighbors возвращает существующих соседей гекса
func (hm *HexMap) InBoundsNeighbors(h Hex) []Hex {
	result := make([]Hex, 0, DirectionCount)
	for _, n := range h.Neighbors() {
		if hm.IsInBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// IsInterior true, если все шесть соседей лежат внутри сетки
func (hm *HexMap) IsInterior(h Hex) bool {
	if !hm.IsInBounds(h) {
		return false
	}
	for _, n := range h.Neighbors() {
		if !hm.IsInBounds(n) {
			return false
		}
	}
	return true
}

// Ray идёт от from в направлении d не больше steps шагов и
// обрывается на первой клетке за пределами сетки. from не входит в результат.
func (hm *HexMap) Ray(from Hex, d Direction, steps int) []Hex {
	if !d.Valid() {
		return nil
	}
	result := make([]Hex, 0, steps)
	current := from
	for i := 0; i < steps; i++ {
		current = current.Neighbor(d)
		if !hm.IsInBounds(current) {
			break
		}
		result = append(result, current)
	}
	return result
}
