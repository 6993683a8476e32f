// pkg/hexmap/pathfinding.go
package hexmap

import (
	"github.com/zyedidia/generic/heap"
)

type searchNode struct {
	hex      Hex
	priority int
	seq      int // порядок добавления, при равном приоритете раньше добавленный
	parent   *searchNode
}

func nodeLess(a, b *searchNode) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// AStar находит кратчайший путь от start до goal по клеткам сетки.
// Путь включает start и goal; nil, если одна из клеток вне сетки.
// При равной длине выбор детерминирован порядком направлений.
func AStar(start, goal Hex, hm *HexMap) []Hex {
	if !hm.IsInBounds(start) || !hm.IsInBounds(goal) {
		return nil
	}
	open := heap.New[*searchNode](nodeLess)
	seq := 0
	open.Push(&searchNode{hex: start})
	costSoFar := map[Hex]int{start: 0}

	for open.Size() > 0 {
		current, _ := open.Pop()
		if current.hex == goal {
			return current.path()
		}
		for _, neighbor := range hm.InBoundsNeighbors(current.hex) {
			newCost := costSoFar[current.hex] + 1
			if cost, seen := costSoFar[neighbor]; seen && newCost >= cost {
				continue
			}
			costSoFar[neighbor] = newCost
			seq++
			open.Push(&searchNode{
				hex:      neighbor,
				priority: newCost + neighbor.StepDistance(goal),
				seq:      seq,
				parent:   current,
			})
		}
	}
	return nil
}

func (n *searchNode) path() []Hex {
	var reversed []Hex
	for node := n; node != nil; node = node.parent {
		reversed = append(reversed, node.hex)
	}
	path := make([]Hex, len(reversed))
	for i, h := range reversed {
		path[len(reversed)-1-i] = h
	}
	return path
}
