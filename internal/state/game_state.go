// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"layer-defense/internal/config"
	"layer-defense/internal/event"
	"layer-defense/internal/system"
	"layer-defense/internal/ui"
	"layer-defense/internal/utils"
	"layer-defense/pkg/render"
	"layer-defense/pkg/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	session       Session
	scheduler     *system.WaveScheduler
	dispatcher    *event.Dispatcher
	trackRenderer *render.TrackRenderer
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	lives         *ui.LivesIndicator
	infoPanel     *ui.InfoPanel
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	nextWave      *ui.Button
	waveDown      *ui.Button
	waveUp        *ui.Button
	width, height int
	banner        string
	bannerTimer   float64
}

func NewGameState(sm *StateMachine, session Session) (*GameState, error) {
	cfg := session.Config
	width, height := sm.ScreenSize()

	path, err := track.New(cfg, float64(width), float64(height))
	if err != nil {
		return nil, fmt.Errorf("build track: %w", err)
	}
	dispatcher := event.NewDispatcher()
	scheduler, err := system.NewWaveScheduler(cfg, session.Catalog, path, utils.NewPRNGService(session.Seed), dispatcher)
	if err != nil {
		return nil, err
	}

	g := &GameState{
		sm:         sm,
		session:    session,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		trackRenderer: render.NewTrackRenderer(render.TrackColors{
			Background: config.BackgroundColor,
			Track:      config.TrackColor,
			Border:     config.TrackBorderColor,
		}, cfg.TrackWidth),
		indicator:     ui.NewStateIndicator(0, 0, 12),
		waveIndicator: ui.NewWaveIndicator(config.HUDPadding, config.HUDPadding),
		lives:         ui.NewLivesIndicator(config.HUDPadding, config.HUDPadding+22),
		infoPanel:     ui.NewInfoPanel(0, 0, 250),
		pauseButton:   ui.NewPauseButton(0, 0, 9, config.ButtonColor, config.LivesColor),
		speedButton:   ui.NewSpeedButton(0, 0, 10),
		nextWave:      ui.NewButton(0, 0, config.ButtonWidth, config.ButtonHeight, "Next wave [N]"),
		waveDown:      ui.NewButton(0, 0, config.ButtonHeight, config.ButtonHeight, "-"),
		waveUp:        ui.NewButton(0, 0, config.ButtonHeight, config.ButtonHeight, "+"),
		width:         width,
		height:        height,
	}
	g.layoutHUD()

	dispatcher.Subscribe(event.LivesDepleted, event.ListenerFunc(func(e event.Event) {
		g.showBanner(fmt.Sprintf("Out of lives on wave %d", e.Wave))
	}))
	dispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(e event.Event) {
		g.showBanner(fmt.Sprintf("Wave %d cleared", e.Wave))
	}))
	return g, nil
}

func (g *GameState) Enter() {}

// layoutHUD раскладывает элементы интерфейса по текущему размеру экрана.
func (g *GameState) layoutHUD() {
	w := float32(g.width)
	pad := float32(config.HUDPadding)

	g.indicator.X, g.indicator.Y = w-pad-12, pad+12
	g.speedButton.X, g.speedButton.Y = w-pad-50, pad+12
	g.pauseButton.X, g.pauseButton.Y = w-pad-84, pad+12

	g.nextWave.X, g.nextWave.Y = pad, pad+56
	g.waveDown.X, g.waveDown.Y = pad, pad+56
	g.waveUp.X, g.waveUp.Y = pad+config.ButtonHeight+6, pad+56

	g.infoPanel.X, g.infoPanel.Y = w-pad-g.infoPanel.Width, pad+40
}

func (g *GameState) showBanner(text string) {
	g.banner = text
	g.bannerTimer = config.BannerDuration
}

func (g *GameState) isBatch() bool {
	return g.scheduler.Mode() == config.ModeBatch
}

func (g *GameState) Update(deltaTime float64) error {
	g.applyScreenSize()

	if g.bannerTimer > 0 {
		g.bannerTimer -= deltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.enterPause()
		return nil
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleGameClick(x, y)
		}
	}

	return g.scheduler.Tick(deltaTime * g.speedButton.Multiplier())
}

// applyScreenSize перестраивает трассу, если окно изменило размер.
func (g *GameState) applyScreenSize() {
	w, h := g.sm.ScreenSize()
	if w == g.width && h == g.height {
		return
	}
	if err := g.scheduler.OnViewportResize(w, h); err != nil {
		log.Printf("[GameState] resize ignored: %v", err)
	}
	// HUD follows the window even when the track could not be rebuilt.
	g.width, g.height = w, h
	g.layoutHUD()
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.triggerWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.scheduler.AdjustWave(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.scheduler.AdjustWave(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.infoPanel.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.speedButton.ToggleState()
	}
}

func (g *GameState) triggerWave() {
	if g.scheduler.TriggerNextWave() {
		g.indicator.HandleClick()
	}
}

func (g *GameState) enterPause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// handleUIClick обрабатывает клики по элементам интерфейса. Возвращает true, если клик поглощён.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.pauseButton.TogglePause()
		g.enterPause()
		return true
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
		return true
	case g.indicator.IsClicked(x, y):
		g.triggerWave()
		return true
	}

	if g.isBatch() {
		if g.nextWave.HandleClick(x, y) {
			g.triggerWave()
			return true
		}
		return false
	}
	if g.waveDown.HandleClick(x, y) {
		g.scheduler.AdjustWave(-1)
		return true
	}
	if g.waveUp.HandleClick(x, y) {
		g.scheduler.AdjustWave(1)
		return true
	}
	return false
}

// handleGameClick снимает один слой с врага под курсором.
func (g *GameState) handleGameClick(x, y int) {
	e := g.scheduler.EnemyAt(float64(x), float64(y))
	if e == nil {
		return
	}
	if e.ApplyDamage(1) {
		log.Printf("[GameState] enemy %d (%s) popped", e.ID, e.Type.Name)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.trackRenderer.Draw(screen, g.scheduler.Path())

	size := g.scheduler.Config().EnemySize
	for _, e := range g.scheduler.Enemies() {
		if e.Alive() {
			render.DrawEnemy(screen, e, size)
		}
	}
	g.DrawUI(screen)
}

// DrawUI рисует HUD поверх поля.
func (g *GameState) DrawUI(screen *ebiten.Image) {
	inProgress := g.scheduler.WaveInProgress()
	g.waveIndicator.Draw(screen, g.scheduler.Wave(), inProgress || !g.isBatch())
	g.lives.Draw(screen, g.scheduler.Lives(), g.scheduler.Config().StartingLives)

	if g.isBatch() {
		g.nextWave.Enabled = !inProgress
		g.nextWave.Draw(screen)
	} else {
		g.waveDown.Enabled = g.scheduler.Wave() > 1
		g.waveDown.Draw(screen)
		g.waveUp.Draw(screen)
	}

	g.indicator.Draw(screen, inProgress)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, g.scheduler.UnlockedTypes(), g.scheduler.Stats())

	if g.bannerTimer > 0 {
		ui.DrawTextCentered(screen, g.banner, g.width/2, g.height/2, config.BannerColor)
	}
}

func (g *GameState) Exit() {}
