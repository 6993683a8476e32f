// internal/territory/engine.go
package territory

import (
	"log/slog"

	"go-hex-territory/internal/event"
	"go-hex-territory/pkg/hexmap"
)

// Engine превращает проход игрока по клеткам в захваченную территорию.
// Один проход = одна команда движения: BeginTraversal, EnterCell...,
// затем CompleteTraversal или AbortTraversal.
type Engine struct {
	grid       *hexmap.HexMap
	dispatcher *event.Dispatcher

	path     []hexmap.Hex
	tracking bool

	captures      int
	capturedCells int
}

func NewEngine(grid *hexmap.HexMap, dispatcher *event.Dispatcher) *Engine {
	return &Engine{grid: grid, dispatcher: dispatcher}
}

// BeginTraversal начинает новый путь со стартовой клетки.
// Незавершённый предыдущий путь сбрасывается без захвата.
func (e *Engine) BeginTraversal(start hexmap.Hex) {
	if e.tracking {
		e.AbortTraversal()
	}
	e.path = e.path[:0]
	e.tracking = true
	e.enter(start)
}

// EnterCell отмечает вход игрока в клетку. Возвращает true, если путь
// только что замкнулся и дальнейшие шаги команды нужно отбросить.
func (e *Engine) EnterCell(h hexmap.Hex) bool {
	if !e.tracking {
		return false
	}
	e.enter(h)
	_, closed := FindLoop(e.path)
	return closed
}

func (e *Engine) enter(h hexmap.Hex) {
	state, ok := e.grid.State(h)
	if !ok || state == hexmap.Captured {
		return
	}
	e.grid.SetState(h, hexmap.Trail)
	e.path = append(e.path, h)
}

// CompleteTraversal проверяет петлю, захватывает окружённую область
// и очищает след.
func (e *Engine) CompleteTraversal() {
	e.Resolve()
}

// Resolve завершает текущий путь и возвращает захваченные клетки.
func (e *Engine) Resolve() []hexmap.Hex {
	if !e.tracking {
		return nil
	}
	var area []hexmap.Hex
	if loop := LoopPath(e.path); loop != nil {
		area = EnclosedArea(e.grid, loop)
		for _, h := range area {
			e.grid.SetState(h, hexmap.Captured)
		}
	}
	e.clearTrail()

	if len(area) > 0 {
		e.captures++
		e.capturedCells += len(area)
		slog.Debug("territory captured", "cells", len(area), "total", e.capturedCells)
		e.dispatcher.Dispatch(event.Event{
			Type: event.TerritoryCaptured,
			Data: event.TerritoryCapture{Cells: area, Size: len(area)},
		})
	}
	return area
}

// AbortTraversal сбрасывает след без проверки петли.
func (e *Engine) AbortTraversal() {
	if !e.tracking {
		return
	}
	e.clearTrail()
}

// clearTrail возвращает в Neutral все клетки пути, кроме Captured.
func (e *Engine) clearTrail() {
	for _, h := range e.path {
		if state, ok := e.grid.State(h); ok && state != hexmap.Captured {
			e.grid.SetState(h, hexmap.Neutral)
		}
	}
	e.path = e.path[:0]
	e.tracking = false
}

// Path текущий путь. Срез не изменять.
func (e *Engine) Path() []hexmap.Hex {
	return e.path
}

func (e *Engine) Tracking() bool {
	return e.tracking
}

// Captures число успешных захватов
func (e *Engine) Captures() int {
	return e.captures
}

func (e *Engine) CapturedCells() int {
	return e.capturedCells
}

// Reset забывает путь и статистику, сетку не трогает
func (e *Engine) Reset() {
	e.path = e.path[:0]
	e.tracking = false
	e.captures = 0
	e.capturedCells = 0
}
