// internal/state/state.go
package state

import (
	"layer-defense/internal/config"
	"layer-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// Session — то, что загружено при старте и переживает смену состояний.
type Session struct {
	Config  *config.Config
	Catalog *defs.Catalog
	Seed    int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(width, height int) *StateMachine {
	return &StateMachine{width: width, height: height}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetScreenSize records the logical screen size reported by Layout.
func (sm *StateMachine) SetScreenSize(width, height int) {
	if width > 0 && height > 0 {
		sm.width, sm.height = width, height
	}
}

func (sm *StateMachine) ScreenSize() (int, int) {
	return sm.width, sm.height
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
