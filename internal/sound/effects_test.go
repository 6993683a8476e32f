// internal/sound/effects_test.go
package sound

import (
	"testing"
	"time"

	"go-hex-territory/internal/event"

	"github.com/gopxl/beep"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	s := newTone(440, 10*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 1000)
	n, ok := s.Stream(samples)
	if !ok {
		t.Fatal("expected ok on first read")
	}
	if want := rate.N(10 * time.Millisecond); n != want {
		t.Fatalf("streamed %d samples, want %d", n, want)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
	if n, ok := s.Stream(samples); n != 0 || ok {
		t.Fatalf("drained tone: got n=%d ok=%v, want 0 false", n, ok)
	}
}

func TestSquareWaveValues(t *testing.T) {
	s := newTone(220, 5*time.Millisecond, WaveSquare, beep.SampleRate(SampleRate))
	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, want ±1", i, v)
		}
	}
}

func TestFadeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	d := 20 * time.Millisecond
	s := newFade(newTone(440, d, WaveSquare, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)
	samples := make([][2]float64, 10)
	s.Stream(samples)
	if samples[0][0] != 0 {
		t.Fatalf("first sample after attack start: got %f, want 0", samples[0][0])
	}
}

func TestRenderProducesStereo16Bit(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	d := 10 * time.Millisecond
	pcm := Render(newTone(440, d, WaveSine, rate))
	if want := rate.N(d) * 4; len(pcm) != want {
		t.Fatalf("pcm length: got %d, want %d", len(pcm), want)
	}
}

func TestEffectPerEvent(t *testing.T) {
	cases := []event.Event{
		{Type: event.TerritoryCaptured, Data: event.TerritoryCapture{Size: 7}},
		{Type: event.ZoneSecured},
		{Type: event.ZoneExpired},
		{Type: event.PlayerHit},
		{Type: event.GameOver},
	}
	for _, e := range cases {
		s := Effect(e)
		if s == nil {
			t.Fatalf("%s: expected a sound", e.Type)
		}
		if len(Render(s)) == 0 {
			t.Fatalf("%s: rendered no audio", e.Type)
		}
	}
	if Effect(event.Event{Type: event.ZoneSpawned}) != nil {
		t.Fatal("zone spawn should be silent")
	}
}
