package system

import (
	"log"

	"layer-defense/internal/config"
	"layer-defense/internal/defs"
	"layer-defense/internal/event"
)

// batchSpawner: один общий таймер, EnemiesPerWave врагов на волну.
// Следующая волна стартует только по TriggerNextWave, кроме самой первой.
type batchSpawner struct {
	started bool
	running bool
	spawned int
	timerMs float64
}

func (b *batchSpawner) start(s *WaveScheduler) {
	b.started = true
	b.running = true
	b.spawned = 0
	b.timerMs = 0
	log.Printf("[WaveScheduler] wave %d started (%d enemies)", s.wave, s.cfg.EnemiesPerWave)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Wave: s.wave})
}

func (b *batchSpawner) update(s *WaveScheduler, dtMs float64) error {
	if !b.started {
		b.start(s)
	}
	if !b.running || b.spawned >= s.cfg.EnemiesPerWave {
		return nil
	}

	b.timerMs += dtMs
	if b.timerMs < s.cfg.SpawnIntervalMs {
		return nil
	}
	b.timerMs = 0

	unlocked := s.unlocked()
	var typ *defs.EnemyType
	if s.cfg.Selection == config.SelectWeighted {
		typ = defs.PickWeighted(unlocked, s.rnd)
	} else {
		typ = defs.PickSequential(unlocked, b.spawned)
	}
	index := -1
	if typ != nil {
		index = typ.Index
	}
	if err := s.spawnIndex(index); err != nil {
		return err
	}
	b.spawned++
	return nil
}

func (b *batchSpawner) settle(s *WaveScheduler) {
	if !b.running || b.spawned < s.cfg.EnemiesPerWave || s.ecs.AliveCount() > 0 {
		return
	}

	b.running = false
	ended := s.wave
	s.wave++
	log.Printf("[WaveScheduler] wave %d cleared, next is %d", ended, s.wave)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Wave: ended})
}

func (b *batchSpawner) intervalFor(s *WaveScheduler, _ int) float64 {
	return s.cfg.SpawnIntervalMs
}

func (b *batchSpawner) inProgress() bool { return b.running }
