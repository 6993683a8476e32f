// internal/secure/zone.go
package secure

import (
	"image/color"
	"log/slog"

	"go-hex-territory/internal/event"
	"go-hex-territory/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// RequiredCount зона всегда требует ровно три клетки
const RequiredCount = 3

type Phase int

const (
	Idle Phase = iota
	Countdown
	Captured
	Removed
	Disabled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Countdown:
		return "Countdown"
	case Captured:
		return "Captured"
	case Removed:
		return "Removed"
	case Disabled:
		return "Disabled"
	}
	return "Unknown"
}

type Config struct {
	RequiredDirs   []hexmap.Direction
	SecureWindow   float64 // секунды на все три клетки после первой
	CaptureFxDelay float64 // задержка удаления после захвата
	ProgressColor  color.RGBA
	DoneColor      color.RGBA
}

func DefaultConfig() Config {
	return Config{
		RequiredDirs:   []hexmap.Direction{hexmap.NorthWest, hexmap.SouthWest},
		SecureWindow:   3.0,
		CaptureFxDelay: 0.25,
		ProgressColor:  color.RGBA{255, 235, 4, 255},
		DoneColor:      color.RGBA{0, 255, 0, 255},
	}
}

// Zone мини-игра вокруг одного объекта: посетить три клетки рядом
// с ним за SecureWindow секунд. Позицию игрока опрашивает каждый тик.
type Zone struct {
	cfg         Config
	provider    GridProvider
	highlighter Highlighter
	dispatcher  *event.Dispatcher

	x, y     float64
	anchor   hexmap.Hex
	required []hexmap.Hex
	visited  mapset.Set[hexmap.Hex]

	phase         Phase
	timer         float64
	timerActive   bool
	removeTimer   float64
	lastPlayerHex hexmap.Hex
}

// NewZone создаёт зону для объекта в мировой точке (x, y).
// Без провайдера зона отключается и больше ничего не делает.
func NewZone(x, y float64, cfg Config, provider GridProvider, highlighter Highlighter, rng Rand, dispatcher *event.Dispatcher) *Zone {
	if highlighter == nil {
		highlighter = noopHighlighter{}
	}
	z := &Zone{
		cfg:         cfg,
		provider:    provider,
		highlighter: highlighter,
		dispatcher:  dispatcher,
		x:           x,
		y:           y,
		visited:     mapset.New[hexmap.Hex](),
	}
	if provider == nil {
		slog.Warn("secure zone disabled: no grid provider", "x", x, "y", y)
		z.phase = Disabled
		return z
	}

	z.anchor = provider.WorldToHex(x, y)
	z.required = requiredHexes(z.anchor, cfg.RequiredDirs, provider, rng)

	if bc, ok := provider.(boundsChecker); ok {
		for _, h := range z.required {
			if !bc.IsInBounds(h) {
				slog.Warn("secure zone has required cell outside the grid", "anchor", z.anchor, "cell", h)
				break
			}
		}
	}

	z.lastPlayerHex = provider.CurrentPlayerHex()
	if z.isRequired(z.lastPlayerHex) {
		z.onEnterRequired(z.lastPlayerHex)
	}
	return z
}

// requiredHexes берёт первые уникальные направления из конфига и
// добирает случайными неиспользованными до трёх.
func requiredHexes(anchor hexmap.Hex, configured []hexmap.Direction, provider GridProvider, rng Rand) []hexmap.Hex {
	bc, hasBounds := provider.(boundsChecker)
	inBounds := func(d hexmap.Direction) bool {
		return !hasBounds || bc.IsInBounds(anchor.Neighbor(d))
	}

	chosen := make([]hexmap.Direction, 0, RequiredCount)
	used := mapset.New[hexmap.Direction]()
	for _, d := range configured {
		if len(chosen) == RequiredCount {
			break
		}
		if !d.Valid() || used.Has(d) || !inBounds(d) {
			continue
		}
		used.Put(d)
		chosen = append(chosen, d)
	}

	// сначала направления внутри сетки, потом остальные
	var preferred, fallback []hexmap.Direction
	for d := hexmap.Direction(0); d < hexmap.DirectionCount; d++ {
		if used.Has(d) {
			continue
		}
		if inBounds(d) {
			preferred = append(preferred, d)
		} else {
			fallback = append(fallback, d)
		}
	}
	for _, pool := range [][]hexmap.Direction{preferred, fallback} {
		for len(chosen) < RequiredCount && len(pool) > 0 {
			i := 0
			if rng != nil {
				i = rng.Intn(len(pool))
			}
			chosen = append(chosen, pool[i])
			pool = append(pool[:i], pool[i+1:]...)
		}
	}

	result := make([]hexmap.Hex, len(chosen))
	for i, d := range chosen {
		result[i] = anchor.Neighbor(d)
	}
	return result
}

// Update один тик: сначала опрос позиции игрока, затем таймер.
func (z *Zone) Update(deltaTime float64) {
	switch z.phase {
	case Disabled, Removed:
		return
	case Captured:
		z.removeTimer -= deltaTime
		if z.removeTimer <= 0 {
			z.Dispose()
		}
		return
	}
	z.handlePlayerMovement()
	z.handleTimer(deltaTime)
}

func (z *Zone) handlePlayerMovement() {
	current := z.provider.CurrentPlayerHex()
	if current == z.lastPlayerHex {
		return
	}
	z.lastPlayerHex = current
	if z.isRequired(current) {
		z.onEnterRequired(current)
	}
}

func (z *Zone) onEnterRequired(h hexmap.Hex) {
	if z.visited.Has(h) {
		return
	}
	z.visited.Put(h)
	z.highlighter.SetColor(h, z.cfg.ProgressColor)

	if z.visited.Size() == 1 {
		z.phase = Countdown
		z.timer = z.cfg.SecureWindow
		z.timerActive = true
		slog.Debug("secure zone countdown started", "anchor", z.anchor)
	}
	if z.visited.Size() == RequiredCount {
		z.onCaptured()
	}
}

func (z *Zone) handleTimer(deltaTime float64) {
	if z.phase != Countdown || !z.timerActive {
		return
	}
	z.timer -= deltaTime
	if z.timer <= 0 {
		z.onTimeout()
	}
}

func (z *Zone) onCaptured() {
	z.phase = Captured
	z.timerActive = false
	z.removeTimer = z.cfg.CaptureFxDelay
	for _, h := range z.required {
		z.highlighter.SetColor(h, z.cfg.DoneColor)
	}
	slog.Debug("secure zone captured", "anchor", z.anchor)
	z.dispatcher.Dispatch(event.Event{
		Type: event.ZoneSecured,
		Data: event.ZoneSecure{Anchor: z.anchor, X: z.x, Y: z.y},
	})
}

func (z *Zone) onTimeout() {
	z.timerActive = false
	z.timer = 0
	z.highlighter.ClearMany(z.VisitedHexes())
	z.visited = mapset.New[hexmap.Hex]()
	z.phase = Idle
	slog.Debug("secure zone timed out", "anchor", z.anchor)
	z.dispatcher.Dispatch(event.Event{
		Type: event.ZoneExpired,
		Data: event.ZoneExpire{Anchor: z.anchor},
	})
}

// Dispose снимает подсветку и выключает зону. Повторный вызов ничего не делает.
func (z *Zone) Dispose() {
	if z.phase == Removed {
		return
	}
	if len(z.required) > 0 {
		z.highlighter.ClearMany(z.required)
	}
	z.phase = Removed
	z.timerActive = false
}

func (z *Zone) isRequired(h hexmap.Hex) bool {
	for _, r := range z.required {
		if r == h {
			return true
		}
	}
	return false
}

func (z *Zone) Phase() Phase {
	return z.phase
}

// Done true после удаления зоны
func (z *Zone) Done() bool {
	return z.phase == Removed
}

func (z *Zone) Anchor() hexmap.Hex {
	return z.anchor
}

func (z *Zone) Position() (x, y float64) {
	return z.x, z.y
}

// RequiredHexes копия обязательных клеток в порядке выбора
func (z *Zone) RequiredHexes() []hexmap.Hex {
	result := make([]hexmap.Hex, len(z.required))
	copy(result, z.required)
	return result
}

// VisitedHexes посещённые клетки в порядке RequiredHexes
func (z *Zone) VisitedHexes() []hexmap.Hex {
	var result []hexmap.Hex
	for _, h := range z.required {
		if z.visited.Has(h) {
			result = append(result, h)
		}
	}
	return result
}

func (z *Zone) VisitedCount() int {
	return z.visited.Size()
}

// TimeLeft оставшееся время отсчёта; false, если отсчёт не идёт
func (z *Zone) TimeLeft() (float64, bool) {
	return z.timer, z.timerActive
}

func (z *Zone) Window() float64 {
	return z.cfg.SecureWindow
}

// IsVisited true, если обязательная клетка уже посещена в текущем отсчёте
func (z *Zone) IsVisited(h hexmap.Hex) bool {
	return z.visited.Has(h)
}
