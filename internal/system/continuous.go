package system

import "math"

// continuousSpawner keeps one timer per unlocked type. Type i spawns every
// BaseIntervalMs * SlowdownFactor^i milliseconds and never waits for a wave to finish.
type continuousSpawner struct {
	timersMs []float64
}

func newContinuousSpawner(catalogLen int) *continuousSpawner {
	return &continuousSpawner{timersMs: make([]float64, catalogLen)}
}

func (c *continuousSpawner) update(s *WaveScheduler, dtMs float64) error {
	n := len(s.unlocked())
	for i := 0; i < n; i++ {
		c.timersMs[i] += dtMs
		if c.timersMs[i] < c.intervalFor(s, i) {
			continue
		}
		c.timersMs[i] = 0
		if err := s.spawnIndex(i); err != nil {
			return err
		}
	}
	return nil
}

func (c *continuousSpawner) settle(*WaveScheduler) {}

// prune resets timers of types that are no longer unlocked.
func (c *continuousSpawner) prune(unlocked int) {
	for i := unlocked; i < len(c.timersMs); i++ {
		c.timersMs[i] = 0
	}
}

func (c *continuousSpawner) intervalFor(s *WaveScheduler, index int) float64 {
	return s.cfg.BaseIntervalMs * math.Pow(s.cfg.SlowdownFactor, float64(index))
}

func (c *continuousSpawner) inProgress() bool { return true }
