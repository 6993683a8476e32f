// internal/state/input.go
package state

import (
	"go-hex-territory/internal/config"
	"go-hex-territory/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
)

// directionKeys раскладка QWE/ASD вокруг гекса
var directionKeys = []struct {
	key ebiten.Key
	dir hexmap.Direction
}{
	{ebiten.KeyW, hexmap.North},
	{ebiten.KeyE, hexmap.NorthEast},
	{ebiten.KeyD, hexmap.SouthEast},
	{ebiten.KeyS, hexmap.South},
	{ebiten.KeyA, hexmap.SouthWest},
	{ebiten.KeyQ, hexmap.NorthWest},
}

// pointerTracker отличает клик от протяжки и собирает путь протяжки
type pointerTracker struct {
	pressed        bool
	dragging       bool
	startX, startY int
	trace          []hexmap.Hex
}

func (p *pointerTracker) Press(x, y int) {
	p.pressed = true
	p.dragging = false
	p.startX, p.startY = x, y
	p.trace = nil
}

// Move возвращает true, когда нажатие уже считается протяжкой
func (p *pointerTracker) Move(x, y int) bool {
	if !p.pressed {
		return false
	}
	if !p.dragging {
		dx, dy := x-p.startX, y-p.startY
		p.dragging = dx*dx+dy*dy >= config.DragMinPixels*config.DragMinPixels
	}
	return p.dragging
}

// Extend заменяет путь протяжки
func (p *pointerTracker) Extend(extend func([]hexmap.Hex) []hexmap.Hex) {
	if p.dragging {
		p.trace = extend(p.trace)
	}
}

// Release заканчивает нажатие. Для протяжки возвращает собранный путь.
func (p *pointerTracker) Release() (trace []hexmap.Hex, dragged bool) {
	trace, dragged = p.trace, p.dragging
	p.pressed, p.dragging, p.trace = false, false, nil
	return trace, dragged
}

func (p *pointerTracker) Pressed() bool {
	return p.pressed
}

func (p *pointerTracker) Trace() []hexmap.Hex {
	return p.trace
}

func (p *pointerTracker) Dragging() bool {
	return p.dragging
}
