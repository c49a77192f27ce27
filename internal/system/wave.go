// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log"

	"layer-defense/internal/component"
	"layer-defense/internal/config"
	"layer-defense/internal/defs"
	"layer-defense/internal/entity"
	"layer-defense/internal/event"
	"layer-defense/internal/utils"
	"layer-defense/pkg/track"
)

// spawner is one scheduling policy. update runs before enemies move,
// settle runs after movement and leak accounting.
type spawner interface {
	update(s *WaveScheduler, dtMs float64) error
	settle(s *WaveScheduler)
	intervalFor(s *WaveScheduler, index int) float64
	inProgress() bool
}

// Stats — счётчики за всю игру.
type Stats struct {
	Spawned      int
	Destroyed    int
	Leaked       int
	LeakedLayers int
}

// TypePreview describes an unlocked type for the HUD preview panel.
type TypePreview struct {
	Type       *defs.EnemyType
	IntervalMs float64
}

// WaveScheduler owns the active enemies, spawn timers, the wave number and lives.
// All methods must be called from the game loop goroutine.
type WaveScheduler struct {
	cfg        *config.Config
	catalog    *defs.Catalog
	rnd        defs.RandomSource
	dispatcher *event.Dispatcher
	ecs        *entity.ECS
	movement   *MovementSystem
	path       *track.Path
	spawner    spawner
	wave       int
	lives      int
	stats      Stats
}

// NewWaveScheduler wires a scheduler for cfg.Mode. rnd may be nil, in which case
// a time-seeded PRNG is used; dispatcher may be nil.
func NewWaveScheduler(cfg *config.Config, catalog *defs.Catalog, path *track.Path, rnd defs.RandomSource, dispatcher *event.Dispatcher) (*WaveScheduler, error) {
	if cfg == nil || catalog == nil || path == nil {
		return nil, errors.New("wave scheduler needs config, catalog and path")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	s := &WaveScheduler{
		cfg:        cfg,
		catalog:    catalog,
		rnd:        rnd,
		dispatcher: dispatcher,
		ecs:        ecs,
		movement:   NewMovementSystem(ecs),
		path:       path,
		wave:       cfg.StartingWave,
		lives:      cfg.StartingLives,
	}

	switch cfg.Mode {
	case config.ModeBatch:
		s.spawner = &batchSpawner{}
	case config.ModeContinuous:
		s.spawner = newContinuousSpawner(catalog.Len())
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, cfg.Mode)
	}

	log.Printf("[WaveScheduler] mode=%s wave=%d lives=%d types=%d", cfg.Mode, s.wave, s.lives, catalog.Len())
	return s, nil
}

// Tick runs one simulation step of dt seconds. dt is clamped to [0, MaxDeltaTime].
// An error means the scheduler asked for a type outside the catalog.
func (s *WaveScheduler) Tick(dt float64) error {
	dt = s.cfg.ClampDelta(dt)
	s.ecs.GameTime += dt

	s.sweep()

	if err := s.spawner.update(s, dt*1000); err != nil {
		return err
	}

	for _, e := range s.movement.Update(dt) {
		s.leak(e)
	}

	s.spawner.settle(s)
	return nil
}

// sweep removes enemies that became terminal since the previous tick.
func (s *WaveScheduler) sweep() {
	for _, e := range s.ecs.Sweep() {
		if e.State() == component.Destroyed {
			s.stats.Destroyed++
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Wave: s.wave, Data: e})
		}
	}
}

func (s *WaveScheduler) leak(e *component.Enemy) {
	damage := e.LeakedDamage()
	s.stats.Leaked++
	s.stats.LeakedLayers += damage

	before := s.lives
	s.lives -= damage
	if s.lives < 0 {
		s.lives = 0
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Wave: s.wave, Data: e})

	if before > 0 && s.lives == 0 {
		log.Printf("[WaveScheduler] lives depleted on wave %d", s.wave)
		s.dispatcher.Dispatch(event.Event{Type: event.LivesDepleted, Wave: s.wave})
	}
}

// spawnIndex creates an enemy of the catalog type at index at the start of the track.
func (s *WaveScheduler) spawnIndex(index int) error {
	typ, err := s.catalog.Type(index)
	if err != nil {
		return fmt.Errorf("spawn on wave %d: %w", s.wave, err)
	}

	e := component.NewEnemy(s.ecs.NewEntity(), s.path, typ, s.cfg.TravelTimeSeconds)
	s.ecs.AddEnemy(e)
	s.stats.Spawned++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Wave: s.wave, Data: e})
	return nil
}

// TriggerNextWave starts the next batch wave. It returns false in continuous mode
// or while a wave is still in progress.
func (s *WaveScheduler) TriggerNextWave() bool {
	b, ok := s.spawner.(*batchSpawner)
	if !ok || b.running {
		return false
	}
	b.start(s)
	return true
}

// AdjustWave shifts the wave number in continuous mode, never below 1.
// It returns false in batch mode or when the wave did not change.
func (s *WaveScheduler) AdjustWave(delta int) bool {
	c, ok := s.spawner.(*continuousSpawner)
	if !ok {
		return false
	}

	next := s.wave + delta
	if next < 1 {
		next = 1
	}
	if next == s.wave {
		return false
	}

	s.wave = next
	c.prune(defs.UnlockedCount(s.wave, s.cfg.UnlockPolicy, s.catalog.Len()))
	log.Printf("[WaveScheduler] wave set to %d", s.wave)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveChanged, Wave: s.wave})
	return true
}

// OnViewportResize rebuilds the track for the new size and re-points all enemies.
// On error the old track stays in place.
func (s *WaveScheduler) OnViewportResize(width, height int) error {
	path, err := track.New(s.cfg, float64(width), float64(height))
	if err != nil {
		return fmt.Errorf("rebuild track for %dx%d: %w", width, height, err)
	}

	s.path = path
	for _, e := range s.ecs.Enemies {
		e.Rebind(path)
	}
	log.Printf("[WaveScheduler] track rebuilt for %dx%d (length %.0f)", width, height, path.TotalLength())
	return nil
}

// UnlockedTypes lists the currently unlocked types with their spawn cadence.
func (s *WaveScheduler) UnlockedTypes() []TypePreview {
	unlocked := s.catalog.TypesUpToWave(s.wave, s.cfg.UnlockPolicy)
	out := make([]TypePreview, len(unlocked))
	for i, typ := range unlocked {
		out[i] = TypePreview{Type: typ, IntervalMs: s.spawner.intervalFor(s, i)}
	}
	return out
}

// EnemyAt returns the alive enemy drawn under (x, y), if any.
func (s *WaveScheduler) EnemyAt(x, y float64) *component.Enemy {
	return s.ecs.EnemyAt(x, y, s.cfg.EnemySize)
}

func (s *WaveScheduler) Wave() int { return s.wave }
func (s *WaveScheduler) Lives() int { return s.lives }
func (s *WaveScheduler) Mode() config.Mode { return s.cfg.Mode }
func (s *WaveScheduler) Path() *track.Path { return s.path }
func (s *WaveScheduler) Enemies() []*component.Enemy { return s.ecs.Enemies }
func (s *WaveScheduler) Stats() Stats { return s.stats }
func (s *WaveScheduler) GameTime() float64 { return s.ecs.GameTime }
func (s *WaveScheduler) WaveInProgress() bool { return s.spawner.inProgress() }
func (s *WaveScheduler) Config() *config.Config { return s.cfg }
func (s *WaveScheduler) Catalog() *defs.Catalog { return s.catalog }
func (s *WaveScheduler) unlocked() []*defs.EnemyType { return s.catalog.TypesUpToWave(s.wave, s.cfg.UnlockPolicy) }
