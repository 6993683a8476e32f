// internal/sound/effects.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate частота для синтеза и для audio.Context
const SampleRate = 44100

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone генерирует простую волну заданной длины
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade линейная атака и затухание
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; left < f.release {
			vol = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume громкость в линейной шкале 0..1
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave Wave) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	return newFade(newTone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CaptureSound восходящее арпеджио, чем больше территория, тем выше последняя нота
func CaptureSound(size int) beep.Streamer {
	top := 784.0 + 40*math.Min(float64(size), 20)
	return withVolume(beep.Seq(
		note(523.25, 70*time.Millisecond, WaveTriangle),
		note(659.25, 70*time.Millisecond, WaveTriangle),
		note(top, 140*time.Millisecond, WaveTriangle),
	), 0.6)
}

// SecureSound колокольчик с обертоном
func SecureSound() beep.Streamer {
	return withVolume(beep.Mix(
		withVolume(note(880, 250*time.Millisecond, WaveSine), 0.7),
		withVolume(note(1760, 250*time.Millisecond, WaveSine), 0.3),
	), 0.7)
}

func ExpireSound() beep.Streamer {
	return withVolume(beep.Seq(
		note(440, 90*time.Millisecond, WaveSquare),
		note(330, 140*time.Millisecond, WaveSquare),
	), 0.3)
}

func HitSound() beep.Streamer {
	return withVolume(note(110, 120*time.Millisecond, WaveSquare), 0.5)
}

func GameOverSound() beep.Streamer {
	return withVolume(beep.Seq(
		note(392, 150*time.Millisecond, WaveTriangle),
		note(311.13, 150*time.Millisecond, WaveTriangle),
		note(261.63, 300*time.Millisecond, WaveTriangle),
	), 0.6)
}

// Render читает поток до конца в 16-битный little-endian стерео PCM
func Render(s beep.Streamer) []byte {
	var pcm []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				pcm = append(pcm, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n == 0 {
			return pcm
		}
	}
}
