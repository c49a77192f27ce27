// internal/state/menu_state.go
package state

import (
	"log"

	"layer-defense/internal/config"
	"layer-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — выбор режима спавна перед началом игры.
type MenuState struct {
	sm       *StateMachine
	session  Session
	selected config.Mode
	batch    *ui.MenuButton
	cont     *ui.MenuButton
}

func NewMenuState(sm *StateMachine, session Session) *MenuState {
	m := &MenuState{
		sm:       sm,
		session:  session,
		selected: session.Config.Mode,
		batch:    ui.NewMenuButton(0, 0, 260, 48, "Batch waves", "fixed count, press N for the next wave"),
		cont:     ui.NewMenuButton(0, 0, 260, 48, "Continuous", "every type spawns on its own timer"),
	}
	return m
}

func (m *MenuState) Enter() {
	m.layout()
}

// layout центрирует кнопки по текущему размеру экрана.
func (m *MenuState) layout() {
	w, h := m.sm.ScreenSize()
	x := float32(w)/2 - m.batch.W/2
	m.batch.X, m.batch.Y = x, float32(h)/2-70
	m.cont.X, m.cont.Y = x, float32(h)/2+10
	m.batch.Selected = m.selected == config.ModeBatch
	m.cont.Selected = m.selected == config.ModeContinuous
}

func (m *MenuState) Update(deltaTime float64) error {
	m.layout()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		return m.start(config.ModeBatch)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		return m.start(config.ModeContinuous)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return m.start(m.selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyDown):
		if m.selected == config.ModeBatch {
			m.selected = config.ModeContinuous
		} else {
			m.selected = config.ModeBatch
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.batch.IsClicked(x, y) {
			return m.start(config.ModeBatch)
		}
		if m.cont.IsClicked(x, y) {
			return m.start(config.ModeContinuous)
		}
	}
	return nil
}

// start копирует конфиг с выбранным режимом и переходит в игру.
func (m *MenuState) start(mode config.Mode) error {
	cfg := *m.session.Config
	cfg.Mode = mode
	session := m.session
	session.Config = &cfg

	log.Printf("[Menu] starting %s mode", mode)
	gs, err := NewGameState(m.sm, session)
	if err != nil {
		return err
	}
	m.sm.SetState(gs)
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := m.sm.ScreenSize()
	ui.DrawTextCentered(screen, "LAYER DEFENSE", w/2, h/2-120, config.TextLightColor)
	m.batch.Draw(screen)
	m.cont.Draw(screen)
	ui.DrawTextCentered(screen, "1 / 2 or click to start", w/2, h/2+100, config.TextDimColor)
}

func (m *MenuState) Exit() {}
