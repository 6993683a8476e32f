// internal/termview/controller.go
package termview

import (
	"unicode"

	"go-hex-territory/internal/interfaces"
	"go-hex-territory/pkg/hexmap"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

var runeDirections = map[rune]hexmap.Direction{
	'w': hexmap.North,
	'e': hexmap.NorthEast,
	'd': hexmap.SouthEast,
	's': hexmap.South,
	'a': hexmap.SouthWest,
	'q': hexmap.NorthWest,
}

// Controller переводит клавиши в команды игры. Заглавные буквы
// не двигают игрока, а дописывают шаг в план, Enter отправляет план.
type Controller struct {
	session interfaces.Session
	planned []hexmap.Hex
}

func NewController(session interfaces.Session) *Controller {
	return &Controller{session: session}
}

// Planned копия запланированного пути
func (c *Controller) Planned() []hexmap.Hex {
	return append([]hexmap.Hex(nil), c.planned...)
}

func (c *Controller) HandleKey(ev *tcell.EventKey) Action {
	return c.Handle(ev.Key(), ev.Rune())
}

// Handle обрабатывает клавишу key, для tcell.KeyRune символ r
func (c *Controller) Handle(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		if len(c.planned) > 0 {
			c.session.MoveByPath(c.planned)
			c.planned = nil
		}
		return ActionNone
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.planned) > 0 {
			c.planned = c.planned[:len(c.planned)-1]
		}
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r {
	case 'r':
		c.planned = nil
		c.session.Restart()
		return ActionNone
	case 'h':
		c.session.HitFrom(hexmap.South)
		return ActionNone
	}
	dir, ok := runeDirections[unicode.ToLower(r)]
	if !ok {
		return ActionNone
	}
	if unicode.IsUpper(r) {
		c.plan(dir)
	} else {
		c.session.MoveByIndex(int(dir))
	}
	return ActionNone
}

func (c *Controller) plan(dir hexmap.Direction) {
	from := c.session.PlayerHex()
	if n := len(c.planned); n > 0 {
		from = c.planned[n-1]
	}
	next := from.Neighbor(dir)
	if !c.session.GetHexMap().IsInBounds(next) {
		return
	}
	c.planned = append(c.planned, next)
}
