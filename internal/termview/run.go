// internal/termview/run.go
package termview

import (
	"time"

	"go-hex-territory/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Run цикл терминальной версии: события клавиатуры из отдельной горутины,
// обновление и отрисовка по тикеру. Возвращается по Esc или Ctrl-C.
func Run(screen tcell.Screen, session interfaces.Session, maxDelta float64) {
	view := NewView(screen, session)
	ctrl := NewController(session)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ctrl.HandleKey(ev) == ActionQuit {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			deltaTime := min(now.Sub(last).Seconds(), maxDelta)
			last = now
			session.Update(deltaTime)
			view.Draw(ctrl.Planned())
		}
	}
}
