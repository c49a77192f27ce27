package component

import (
	"layer-defense/internal/defs"
	"layer-defense/internal/types"
	"layer-defense/pkg/track"
)

// EnemyState — фаза жизни врага.
type EnemyState int

const (
	Traveling EnemyState = iota
	Destroyed
	ReachedEnd
)

func (s EnemyState) String() string {
	switch s {
	case Traveling:
		return "traveling"
	case Destroyed:
		return "destroyed"
	case ReachedEnd:
		return "reached_end"
	}
	return "unknown"
}

// progressEpsilon absorbs float drift so that dt summing to the travel time finishes the track.
const progressEpsilon = 1e-9

// Enemy представляет вражескую сущность на трассе.
type Enemy struct {
	ID        types.EntityID
	Type      *defs.EnemyType
	Layers    int
	MaxLayers int
	Progress  float64
	Speed     float64 // доля трассы в секунду
	Position  track.Point

	path  *track.Path
	state EnemyState
}

// NewEnemy places a fresh enemy at the start of path.
func NewEnemy(id types.EntityID, path *track.Path, typ *defs.EnemyType, travelTimeSeconds float64) *Enemy {
	return &Enemy{
		ID:        id,
		Type:      typ,
		Layers:    typ.Layers,
		MaxLayers: typ.Layers,
		Speed:     1 / travelTimeSeconds,
		Position:  path.PositionAtProgress(0),
		path:      path,
		state:     Traveling,
	}
}

// Advance moves the enemy dt seconds along its path. Reaching the end is terminal
// and the remaining layers become leaked damage.
func (e *Enemy) Advance(dt float64) {
	if e.state != Traveling || dt <= 0 {
		return
	}

	e.Progress += e.Speed * dt
	e.Position = e.path.PositionAtProgress(e.Progress)

	if e.Progress >= 1-progressEpsilon {
		e.state = ReachedEnd
		e.Position = e.path.PositionAtProgress(1)
	}
}

// ApplyDamage removes layers. Non-positive amounts change nothing.
// Returns true when this call destroyed the enemy.
func (e *Enemy) ApplyDamage(amount int) bool {
	if e.state != Traveling || amount <= 0 {
		return false
	}

	e.Layers -= amount
	if e.Layers <= 0 {
		e.state = Destroyed
		return true
	}
	return false
}

// Rebind re-points the enemy to a rebuilt path. Progress is kept.
func (e *Enemy) Rebind(path *track.Path) {
	e.path = path
	e.Position = path.PositionAtProgress(e.Progress)
}

func (e *Enemy) State() EnemyState { return e.state }

func (e *Enemy) Alive() bool { return e.state == Traveling }

func (e *Enemy) ReachedEnd() bool { return e.state == ReachedEnd }

// LeakedDamage is the number of lives this enemy costs; zero unless it reached the end.
func (e *Enemy) LeakedDamage() int {
	if e.state != ReachedEnd || e.Layers < 0 {
		return 0
	}
	return e.Layers
}

// Path returns the track the enemy currently follows.
func (e *Enemy) Path() *track.Path { return e.path }
