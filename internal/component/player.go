// internal/component/player.go
package component

// Player — единственная управляемая сущность.
// Размер фиксирован и задаётся при создании, меняется только позиция.
type Player struct {
	Position
	Width  float64
	Height float64
}

// Bounds возвращает bounding box игрока
func (p Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
