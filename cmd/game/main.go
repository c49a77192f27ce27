// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"layer-defense/internal/config"
	"layer-defense/internal/defs"
	"layer-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	cfg            *config.Config
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := a.cfg.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт размер окна как есть: трасса перестраивается под него.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	catalogPath := flag.String("catalog", "", "path to a YAML enemy catalog")
	mode := flag.String("mode", "", "spawn mode override: batch or continuous")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	skipMenu := flag.Bool("skip-menu", false, "start the game without the mode menu")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Mode = config.Mode(*mode)
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	catalog := defs.DefaultCatalog()
	if *catalogPath != "" {
		loaded, err := defs.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatal(err)
		}
		catalog = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[Main] mode=%s types=%d seed=%d", cfg.Mode, catalog.Len(), *seed)

	session := state.Session{Config: cfg, Catalog: catalog, Seed: *seed}
	sm := state.NewStateMachine(cfg.ScreenWidth, cfg.ScreenHeight) // Создаём машину состояний
	if *skipMenu {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	app := &AppGame{
		stateMachine:   sm,
		cfg:            cfg,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Layer Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
