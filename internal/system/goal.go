// internal/system/goal.go
package system

import "pulka/internal/entity"

// GoalSystem проверяет, дошёл ли игрок до финиша
type GoalSystem struct {
	world *entity.World
}

func NewGoalSystem(world *entity.World) *GoalSystem {
	return &GoalSystem{world: world}
}

// Reached — игрок заходит за левый край финиша и перекрывает его по вертикали.
// Сравнения строгие, в отличие от столкновений со снарядами.
func (s *GoalSystem) Reached() bool {
	p := s.world.Player.Bounds()
	g := s.world.Goal()
	return p.Right() > g.X && p.Bottom() > g.Y && p.Y < g.Bottom()
}
