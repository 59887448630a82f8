// internal/system/movement.go
package system

import (
	"pulka/internal/component"
	"pulka/internal/config"
	"pulka/internal/entity"
	"pulka/internal/utils"
)

// MovementSystem двигает игрока по намерению и держит его внутри поля
type MovementSystem struct {
	world *entity.World
	speed float64
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world, speed: config.PlayerSpeed}
}

func (s *MovementSystem) Update(intent component.Intent) {
	p := &s.world.Player
	if intent.Up {
		p.Y -= s.speed
	}
	if intent.Down {
		p.Y += s.speed
	}
	if intent.Left {
		p.X -= s.speed
	}
	if intent.Right {
		p.X += s.speed
	}

	// Ограничиваем всегда, а не только при движении: после ресайза окна
	// игрок может оказаться за новой границей.
	field := s.world.Playfield
	p.X = utils.Clamp(p.X, 0, field.W-p.Width)
	p.Y = utils.Clamp(p.Y, 0, field.H-p.Height)
}
