// internal/app/snapshot.go
package app

import "pulka/internal/component"

// Snapshot — копия состояния для отрисовки. Рендер не видит сам мир.
type Snapshot struct {
	Phase       Phase
	Level       int
	LevelCount  int
	Playfield   component.Size
	Player      component.Rect
	Projectiles []component.Rect
	Goal        component.Rect
}

// Snapshot собирает снимок. dst переиспользуется, чтобы не аллоцировать каждый кадр.
func (g *Game) Snapshot(dst *Snapshot) {
	dst.Phase = g.phase
	dst.Level = g.level
	dst.LevelCount = g.schedule.Count()
	dst.Playfield = g.World.Playfield
	dst.Player = g.World.Player.Bounds()
	dst.Goal = g.World.Goal()
	dst.Projectiles = dst.Projectiles[:0]
	for _, p := range g.World.Projectiles {
		dst.Projectiles = append(dst.Projectiles, p.Bounds())
	}
}

// Sink — приёмник снимков (рендер под ebiten или raylib)
type Sink interface {
	Render(s *Snapshot)
}
