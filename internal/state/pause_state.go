// internal/state/pause_state.go
package state

import (
	"image/color"

	"layer-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: GameState не получает Update, время игры стоит.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		game:         game,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.game.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		// При выходе из паузы нужно "отжать" кнопку в самом игровом состоянии
		s.game.pauseButton.TogglePause()
		s.game.pauseButton.SetPaused(false)
		s.stateMachine.SetState(s.game)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	w, h := s.stateMachine.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	ui.DrawTextCentered(screen, "PAUSED", w/2, h/2-20, color.White)
	ui.DrawTextCentered(screen, "P / Esc to resume", w/2, h/2, color.RGBA{150, 150, 170, 255})
}

func (s *PauseState) Exit() {}
