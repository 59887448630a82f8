// internal/entity/world.go
package entity

import (
	"pulka/internal/component"
	"pulka/internal/config"
	"time"
)

// World — состояние сущностей одного уровня: игрок, снаряды, поле.
// Владеет им контроллер уровня, меняют только системы симуляции.
type World struct {
	Playfield   component.Size
	Player      component.Player
	Projectiles []component.Projectile
	LastSpawn   time.Duration // время последнего появления снаряда, 0 после сброса
}

// NewWorld создаёт мир с полем заданного размера и игроком в исходной точке.
func NewWorld(width, height float64) *World {
	w := &World{
		Playfield: component.Size{W: width, H: height},
	}
	w.Reset()
	return w
}

// Reset возвращает игрока в начало, очищает снаряды и обнуляет таймер.
func (w *World) Reset() {
	w.Player = NewPlayer()
	w.Projectiles = w.Projectiles[:0]
	w.LastSpawn = 0
}

// Resize меняет размер поля. Позиция игрока не трогается:
// её приведёт в границы следующий шаг симуляции.
func (w *World) Resize(width, height float64) {
	w.Playfield = component.Size{W: width, H: height}
}

// Goal — финишная зона у правого края, по центру по вертикали.
func (w *World) Goal() component.Rect {
	return component.Rect{
		X: w.Playfield.W - config.GoalWidth,
		Y: (w.Playfield.H - config.GoalHeight) / 2,
		W: config.GoalWidth,
		H: config.GoalHeight,
	}
}

// NewPlayer — игрок в исходной точке
func NewPlayer() component.Player {
	return component.Player{
		Position: component.Position{X: config.PlayerStartX, Y: config.PlayerStartY},
		Width:    config.PlayerWidth,
		Height:   config.PlayerHeight,
	}
}

// NewProjectile — снаряд стандартного размера
func NewProjectile(x, y float64) component.Projectile {
	return component.Projectile{
		Position: component.Position{X: x, Y: y},
		Width:    config.ProjectileWidth,
		Height:   config.ProjectileHeight,
	}
}
