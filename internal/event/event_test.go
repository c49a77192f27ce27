package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(e Event) { got = append(got, "ended") }))

	d.Dispatch(Event{Type: WaveStarted, Wave: 3})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("unexpected calls %v", got)
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: LivesDepleted})
}
