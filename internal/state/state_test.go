package state

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
	err  error
}

func (s *recordingState) Enter() { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(float64) error {
	*s.log = append(*s.log, s.name+".update")
	return s.err
}
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var calls []string
	sm := NewStateMachine(900, 600)
	if err := sm.Update(0.016); err != nil {
		t.Fatalf("empty machine returned %v", err)
	}

	a := &recordingState{name: "a", log: &calls}
	b := &recordingState{name: "b", log: &calls}
	sm.SetState(a)
	_ = sm.Update(0.016)
	sm.SetState(b)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
	if sm.Current() != b {
		t.Error("current state not switched")
	}
}

func TestStateMachineUpdateError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	sm := NewStateMachine(900, 600)
	sm.SetState(&recordingState{name: "a", log: &calls, err: boom})
	if err := sm.Update(0.016); !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want %v", err, boom)
	}
}

func TestStateMachineScreenSize(t *testing.T) {
	sm := NewStateMachine(900, 600)
	sm.SetScreenSize(0, 400)
	if w, h := sm.ScreenSize(); w != 900 || h != 600 {
		t.Errorf("zero width accepted: %dx%d", w, h)
	}
	sm.SetScreenSize(1280, 720)
	if w, h := sm.ScreenSize(); w != 1280 || h != 720 {
		t.Errorf("ScreenSize = %dx%d, want 1280x720", w, h)
	}
}
