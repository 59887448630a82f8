// internal/input/input.go
package input

import "pulka/internal/component"

// Provider — источник направленного намерения.
// player — текущий bounding box игрока, нужен указателю и тачу.
type Provider interface {
	Intent(player component.Rect) component.Intent
}

// Именованные клавиши направлений
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Towards переводит точку в намерение относительно прямоугольника игрока.
// По каждой оси направления взаимоисключающие, точка внутри даёт ноль.
func Towards(x, y float64, player component.Rect) component.Intent {
	var in component.Intent
	if y < player.Y {
		in.Up = true
	} else if y > player.Bottom() {
		in.Down = true
	}
	if x < player.X {
		in.Left = true
	} else if x > player.Right() {
		in.Right = true
	}
	return in
}

// Combined объединяет несколько источников по ИЛИ
type Combined []Provider

func (c Combined) Intent(player component.Rect) component.Intent {
	var in component.Intent
	for _, p := range c {
		in = in.Merge(p.Intent(player))
	}
	return in
}
