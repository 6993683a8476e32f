// internal/state/input_test.go
package state

import (
	"testing"

	"go-hex-territory/pkg/hexmap"
)

func TestPointerClickIsNotDrag(t *testing.T) {
	var p pointerTracker
	p.Press(100, 100)
	if p.Move(102, 101) {
		t.Fatal("small jitter should not start a drag")
	}
	trace, dragged := p.Release()
	if dragged || len(trace) != 0 {
		t.Fatalf("click: got dragged=%v trace=%v", dragged, trace)
	}
}

func TestPointerDragCollectsTrace(t *testing.T) {
	var p pointerTracker
	p.Press(100, 100)
	if !p.Move(120, 100) {
		t.Fatal("long move should start a drag")
	}
	p.Extend(func(tr []hexmap.Hex) []hexmap.Hex { return append(tr, hexmap.Hex{Col: 1, Row: 1}) })
	// назад к старту: протяжка не отменяется
	if !p.Move(100, 100) {
		t.Fatal("drag should stay active once started")
	}
	p.Extend(func(tr []hexmap.Hex) []hexmap.Hex { return append(tr, hexmap.Hex{Col: 1, Row: 2}) })

	trace, dragged := p.Release()
	if !dragged || len(trace) != 2 {
		t.Fatalf("drag: got dragged=%v trace=%v", dragged, trace)
	}
	if p.Dragging() || p.Trace() != nil {
		t.Fatal("release should reset the tracker")
	}
}

func TestPointerIgnoresMoveWithoutPress(t *testing.T) {
	var p pointerTracker
	if p.Move(500, 500) {
		t.Fatal("move without press is not a drag")
	}
}

func TestDirectionKeysCoverAllDirections(t *testing.T) {
	seen := map[hexmap.Direction]bool{}
	for _, k := range directionKeys {
		seen[k.dir] = true
	}
	if len(seen) != hexmap.DirectionCount {
		t.Fatalf("key map covers %d directions, want %d", len(seen), hexmap.DirectionCount)
	}
}
