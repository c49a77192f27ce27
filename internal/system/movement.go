// internal/system/movement.go
package system

import (
	"layer-defense/internal/component"
	"layer-defense/internal/entity"
)

// MovementSystem продвигает врагов по трассе
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update advances every traveling enemy and returns those that reached the end during this call.
func (s *MovementSystem) Update(deltaTime float64) []*component.Enemy {
	var leaked []*component.Enemy
	for _, e := range s.ecs.Enemies {
		if !e.Alive() {
			continue
		}
		e.Advance(deltaTime)
		if e.ReachedEnd() {
			leaked = append(leaked, e)
		}
	}
	return leaked
}
