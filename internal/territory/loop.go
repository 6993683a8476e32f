// internal/territory/loop.go
package territory

import (
	"go-hex-territory/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// minLoopLength A->B->C->A, меньше замкнуть нельзя
const minLoopLength = 4

// FindLoop ищет первый индекс i < len-2, для которого path[i] совпадает
// с последней точкой пути.
func FindLoop(path []hexmap.Hex) (int, bool) {
	n := len(path)
	if n < minLoopLength {
		return 0, false
	}
	last := path[n-1]
	for i := 0; i < n-2; i++ {
		if path[i] == last {
			return i, true
		}
	}
	return 0, false
}

// LoopPath возвращает замкнутый участок пути, обе точки замыкания включены.
func LoopPath(path []hexmap.Hex) []hexmap.Hex {
	i, ok := FindLoop(path)
	if !ok {
		return nil
	}
	loop := make([]hexmap.Hex, len(path)-i)
	copy(loop, path[i:])
	return loop
}

// EnclosedArea заливкой от соседей петли ищет первую компоненту Neutral-клеток,
// которая не касается края сетки. nil, если петля ничего не окружает.
func EnclosedArea(grid *hexmap.HexMap, loop []hexmap.Hex) []hexmap.Hex {
	loopSet := mapset.New[hexmap.Hex]()
	for _, h := range loop {
		loopSet.Put(h)
	}

	seen := mapset.New[hexmap.Hex]()
	var potentialFills []hexmap.Hex
	for _, h := range loop {
		for _, n := range h.Neighbors() {
			if loopSet.Has(n) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			if state, ok := grid.State(n); ok && state == hexmap.Neutral {
				potentialFills = append(potentialFills, n)
			}
		}
	}

	visited := mapset.New[hexmap.Hex]()
	for _, start := range potentialFills {
		if visited.Has(start) {
			continue
		}
		area, leaked := floodFill(grid, start, loopSet, visited)
		if !leaked {
			return area
		}
	}
	return nil
}

// floodFill обходит компоненту в ширину. leaked означает выход за сетку.
func floodFill(grid *hexmap.HexMap, start hexmap.Hex, loopSet, visited mapset.Set[hexmap.Hex]) (area []hexmap.Hex, leaked bool) {
	queue := []hexmap.Hex{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		area = append(area, current)
		for _, n := range current.Neighbors() {
			if loopSet.Has(n) || visited.Has(n) {
				continue
			}
			state, ok := grid.State(n)
			if !ok {
				leaked = true
				continue
			}
			if state != hexmap.Neutral {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return area, leaked
}
