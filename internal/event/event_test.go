package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOnlyToSubscribedType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ZoneSecured, r)
	d.Dispatch(Event{Type: TerritoryCaptured, Data: TerritoryCapture{Size: 3}})
	d.Dispatch(Event{Type: ZoneSecured, Data: ZoneSecure{X: 1, Y: 2}})
	if len(r.got) != 1 || r.got[0].Type != ZoneSecured {
		t.Fatalf("got %v, want one ZoneSecured", r.got)
	}
	if p := r.got[0].Data.(ZoneSecure); p.X != 1 || p.Y != 2 {
		t.Fatalf("payload = %+v", p)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerHit, a)
	d.Subscribe(PlayerHit, b)
	d.Unsubscribe(PlayerHit, a)
	d.Dispatch(Event{Type: PlayerHit})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("a got %d, b got %d", len(a.got), len(b.got))
	}
}

func TestSubscribeFuncAndNilDispatcher(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.SubscribeFunc(GameOver, func(Event) { calls++ })
	d.Dispatch(Event{Type: GameOver})
	d.Unsubscribe(GameOver, ListenerFunc(func(Event) {}))
	d.Dispatch(Event{Type: GameOver})
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	var nilDispatcher *Dispatcher
	nilDispatcher.Dispatch(Event{Type: GameOver})
}
