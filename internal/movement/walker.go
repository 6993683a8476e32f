// internal/movement/walker.go
package movement

import (
	"log/slog"

	"go-hex-territory/internal/utils"
	"go-hex-territory/pkg/hexmap"
)

// Status результат одного тика Walker
type Status int

const (
	Idle Status = iota
	Moving
	SegmentComplete
	PathComplete
	Canceled
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case SegmentComplete:
		return "SegmentComplete"
	case PathComplete:
		return "PathComplete"
	case Canceled:
		return "Canceled"
	}
	return "Unknown"
}

// Tracker получает клетки, в которые игрок вошёл во время команды движения.
// EnterCell возвращает true, если остаток команды нужно отбросить.
type Tracker interface {
	BeginTraversal(start hexmap.Hex)
	EnterCell(h hexmap.Hex) bool
	CompleteTraversal()
	AbortTraversal()
}

type Config struct {
	StepDuration      float64 // секунды на одну клетку
	KnockbackDuration float64
}

func DefaultConfig() Config {
	return Config{StepDuration: 0.2, KnockbackDuration: 0.27}
}

type segment struct {
	from, to   hexmap.Hex
	startX     float64
	startY     float64
	endX, endY float64
	elapsed    float64
	duration   float64
	tracked    bool // false для отбрасывания
}

// Walker пошагово ведёт игрока по клеткам. Каждый Tick продвигает текущий
// отрезок и завершает не больше одного отрезка за вызов.
type Walker struct {
	grid    *hexmap.HexMap
	tracker Tracker
	cfg     Config

	hex  hexmap.Hex // последняя полностью пройденная клетка
	x, y float64

	queue      []hexmap.Hex
	seg        *segment
	traversing bool
}

func NewWalker(grid *hexmap.HexMap, tracker Tracker, cfg Config) *Walker {
	return &Walker{grid: grid, tracker: tracker, cfg: cfg}
}

// Place ставит игрока в клетку без анимации, текущая команда сбрасывается.
func (w *Walker) Place(h hexmap.Hex) {
	w.Cancel()
	w.hex = h
	w.x, w.y = w.grid.HexToWorld(h)
}

func (w *Walker) Hex() hexmap.Hex {
	return w.hex
}

// Position текущая мировая позиция, в том числе посреди отрезка
func (w *Walker) Position() (x, y float64) {
	return w.x, w.y
}

func (w *Walker) IsMoving() bool {
	return w.seg != nil
}

// IsKnockback true, пока идёт отбрасывание
func (w *Walker) IsKnockback() bool {
	return w.seg != nil && !w.seg.tracked
}

// Target клетка, к которой идёт текущий отрезок
func (w *Walker) Target() (hexmap.Hex, bool) {
	if w.seg == nil {
		return hexmap.Hex{}, false
	}
	return w.seg.to, true
}

// Queue оставшиеся клетки команды после текущего отрезка
func (w *Walker) Queue() []hexmap.Hex {
	result := make([]hexmap.Hex, len(w.queue))
	copy(result, w.queue)
	return result
}

// MoveByIndex шаг к соседу с индексом 0..5.
func (w *Walker) MoveByIndex(dir int) bool {
	d := hexmap.Direction(dir)
	if !d.Valid() {
		return false
	}
	return w.MoveByPath([]hexmap.Hex{w.hex.Neighbor(d)}) > 0
}

// MoveByPath запускает движение по списку клеток. Список обрезается на первой
// клетке вне сетки или не соседней с предыдущей. Возвращает число принятых шагов.
func (w *Walker) MoveByPath(targets []hexmap.Hex) int {
	if w.IsMoving() || len(targets) == 0 {
		return 0
	}
	steps := w.validPrefix(targets)
	if len(steps) == 0 {
		return 0
	}
	if len(steps) < len(targets) {
		slog.Debug("path truncated", "requested", len(targets), "accepted", len(steps))
	}
	w.queue = steps
	w.traversing = true
	if w.tracker != nil {
		w.tracker.BeginTraversal(w.hex)
	}
	w.startNext()
	return len(steps)
}

func (w *Walker) validPrefix(targets []hexmap.Hex) []hexmap.Hex {
	prev := w.hex
	steps := make([]hexmap.Hex, 0, len(targets))
	for _, t := range targets {
		if !w.grid.IsInBounds(t) || !prev.IsAdjacent(t) {
			break
		}
		steps = append(steps, t)
		prev = t
	}
	return steps
}

func (w *Walker) startNext() {
	next := w.queue[0]
	w.queue = w.queue[1:]
	ex, ey := w.grid.HexToWorld(next)
	w.seg = &segment{
		from: w.hex, to: next,
		startX: w.x, startY: w.y,
		endX: ex, endY: ey,
		duration: w.cfg.StepDuration,
		tracked:  true,
	}
}

// Tick продвигает текущий отрезок на deltaTime секунд.
func (w *Walker) Tick(deltaTime float64) Status {
	seg := w.seg
	if seg == nil {
		return Idle
	}
	seg.elapsed += deltaTime
	t := 1.0
	if seg.duration > 0 {
		t = seg.elapsed / seg.duration
	}
	if t < 1 {
		w.x = utils.Lerp(seg.startX, seg.endX, t)
		w.y = utils.Lerp(seg.startY, seg.endY, t)
		return Moving
	}

	w.x, w.y = seg.endX, seg.endY
	w.hex = seg.to
	w.seg = nil
	if !seg.tracked {
		return PathComplete
	}

	if w.tracker != nil && w.tracker.EnterCell(w.hex) {
		w.queue = nil
	}
	if len(w.queue) == 0 {
		w.traversing = false
		if w.tracker != nil {
			w.tracker.CompleteTraversal()
		}
		return PathComplete
	}
	w.startNext()
	return SegmentComplete
}

// Cancel прерывает команду: очередь отбрасывается, недошедший отрезок
// не засчитывается, позиция возвращается в последнюю пройденную клетку.
func (w *Walker) Cancel() Status {
	if w.seg == nil && !w.traversing {
		return Idle
	}
	w.queue = nil
	w.seg = nil
	w.x, w.y = w.grid.HexToWorld(w.hex)
	if w.traversing {
		w.traversing = false
		if w.tracker != nil {
			w.tracker.AbortTraversal()
		}
	}
	return Canceled
}

// Knockback прерывает движение и сдвигает игрока на одну клетку в направлении d
// без учёта следа. За край сетки не отбрасывает.
func (w *Walker) Knockback(d hexmap.Direction) bool {
	w.Cancel()
	if !d.Valid() {
		return false
	}
	target := w.hex.Neighbor(d)
	if !w.grid.IsInBounds(target) {
		slog.Debug("knockback blocked by grid edge", "from", w.hex, "dir", d)
		return false
	}
	ex, ey := w.grid.HexToWorld(target)
	w.seg = &segment{
		from: w.hex, to: target,
		startX: w.x, startY: w.y,
		endX: ex, endY: ey,
		duration: w.cfg.KnockbackDuration,
	}
	return true
}
