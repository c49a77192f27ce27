// internal/entity/ecs.go
package entity

import (
	"layer-defense/internal/component"
	"layer-defense/internal/types"
)

// ECS владеет коллекцией активных врагов. Порядок добавления сохраняется,
// чтобы утечки и отрисовка шли детерминированно.
type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Enemies  []*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:  1,
		Enemies: make([]*component.Enemy, 0, 64),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy appends an enemy to the active collection.
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

// Sweep removes every enemy that is no longer alive and returns them.
func (ecs *ECS) Sweep() []*component.Enemy {
	var removed []*component.Enemy
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}
	// обнуляем хвост, чтобы не держать ссылки на удалённых врагов
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
	return removed
}

// AliveCount counts enemies that are still traveling.
func (ecs *ECS) AliveCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// EnemyAt returns the topmost alive enemy whose square of the given size contains (x, y).
func (ecs *ECS) EnemyAt(x, y, size float64) *component.Enemy {
	half := size / 2
	for i := len(ecs.Enemies) - 1; i >= 0; i-- {
		e := ecs.Enemies[i]
		if !e.Alive() {
			continue
		}
		if x >= e.Position.X-half && x <= e.Position.X+half && y >= e.Position.Y-half && y <= e.Position.Y+half {
			return e
		}
	}
	return nil
}

// Clear drops every enemy.
func (ecs *ECS) Clear() {
	ecs.Enemies = ecs.Enemies[:0]
}
