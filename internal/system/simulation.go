// internal/system/simulation.go
package system

import (
	"pulka/internal/component"
	"pulka/internal/entity"
	"pulka/internal/event"
	"pulka/internal/utils"
	"time"
)

// Simulation — один кадр игры поверх общего мира.
type Simulation struct {
	World            *entity.World
	MovementSystem   *MovementSystem
	SpawnSystem      *SpawnSystem
	ProjectileSystem *ProjectileSystem
	GoalSystem       *GoalSystem
}

func NewSimulation(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *Simulation {
	return &Simulation{
		World:            world,
		MovementSystem:   NewMovementSystem(world),
		SpawnSystem:      NewSpawnSystem(world, rng, eventDispatcher),
		ProjectileSystem: NewProjectileSystem(world),
		GoalSystem:       NewGoalSystem(world),
	}
}

// Step продвигает мир на один кадр.
// Порядок: движение игрока, появление снаряда, снаряды и столкновения, финиш.
// Если в одном кадре и финиш, и попадание, выигрывает финиш.
func (s *Simulation) Step(intent component.Intent, now, spawnInterval time.Duration) component.Outcome {
	s.MovementSystem.Update(intent)
	s.SpawnSystem.Update(now, spawnInterval)
	hit := s.ProjectileSystem.Update()

	switch {
	case s.GoalSystem.Reached():
		return component.Won
	case hit:
		return component.Lost
	default:
		return component.Continue
	}
}
