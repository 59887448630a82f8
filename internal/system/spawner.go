// internal/system/spawner.go
package system

import (
	"pulka/internal/config"
	"pulka/internal/entity"
	"pulka/internal/event"
	"pulka/internal/utils"
	"time"
)

// SpawnSystem добавляет снаряды с фиксированным интервалом.
// Время берётся из часов кадра, а не из счётчика кадров.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update создаёт снаряд, если с прошлого появления прошло строго больше interval.
func (s *SpawnSystem) Update(now, interval time.Duration) bool {
	if now-s.world.LastSpawn <= interval {
		return false
	}
	field := s.world.Playfield
	p := entity.NewProjectile(field.W-config.SpawnOffsetX, s.rng.Uniform(0, field.H))
	s.world.Projectiles = append(s.world.Projectiles, p)
	s.world.LastSpawn = now

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileSpawned, Data: p})
	}
	return true
}
