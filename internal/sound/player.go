// internal/sound/player.go
package sound

import (
	"log/slog"

	"go-hex-territory/internal/event"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Effect звуковой эффект для события игры, nil если событие беззвучное
func Effect(e event.Event) beep.Streamer {
	switch e.Type {
	case event.TerritoryCaptured:
		size := 0
		if c, ok := e.Data.(event.TerritoryCapture); ok {
			size = c.Size
		}
		return CaptureSound(size)
	case event.ZoneSecured:
		return SecureSound()
	case event.ZoneExpired:
		return ExpireSound()
	case event.PlayerHit:
		return HitSound()
	case event.GameOver:
		return GameOverSound()
	}
	return nil
}

// Player проигрывает эффекты через ebiten audio
type Player struct {
	ctx   *audio.Context
	muted bool
}

func NewPlayer() *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Player{ctx: ctx}
}

// Subscribe подписывает плеер на все озвучиваемые события
func (p *Player) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.TerritoryCaptured,
		event.ZoneSecured,
		event.ZoneExpired,
		event.PlayerHit,
		event.GameOver,
	} {
		d.Subscribe(t, p)
	}
}

func (p *Player) OnEvent(e event.Event) {
	if p.muted {
		return
	}
	s := Effect(e)
	if s == nil {
		return
	}
	pcm := Render(s)
	if len(pcm) == 0 {
		slog.Debug("empty sound effect", "event", e.Type)
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}
