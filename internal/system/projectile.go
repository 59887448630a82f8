// internal/system/projectile.go
package system

import (
	"pulka/internal/config"
	"pulka/internal/entity"
)

// ProjectileSystem двигает снаряды влево и проверяет попадание в игрока
type ProjectileSystem struct {
	world *entity.World
	speed float64
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world, speed: config.ProjectileSpeed}
}

// Update возвращает true, если хотя бы один снаряд задел игрока.
// После попадания цикл не прерывается: все снаряды этого кадра
// всё равно сдвигаются, а вылетевшие за левый край удаляются.
func (s *ProjectileSystem) Update() bool {
	player := s.world.Player.Bounds()
	hit := false

	kept := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		if p.Bounds().Overlaps(player) {
			hit = true
		}
		p.X -= s.speed
		if p.X > config.ProjectileDespawn {
			kept = append(kept, p)
		}
	}
	s.world.Projectiles = kept
	return hit
}
