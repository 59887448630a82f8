// internal/component/movement.go
package component

// Position — компонент позиции (левый верхний угол сущности)
type Position struct {
	X, Y float64
}

// Size — ширина и высота в пикселях растра
type Size struct {
	W, H float64
}

// Rect — осевой прямоугольник (bounding box)
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps проверяет пересечение двух прямоугольников.
// Все четыре сравнения включают границы: касание краями тоже считается пересечением.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X &&
		r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Contains проверяет, лежит ли точка внутри прямоугольника (с границей).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
