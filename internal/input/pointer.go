// internal/input/pointer.go
package input

import "pulka/internal/component"

// Pointer — мышь: пока кнопка зажата, игрок идёт к курсору.
type Pointer struct {
	x, y    float64
	pressed bool
}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
}

func (p *Pointer) Press()   { p.pressed = true }
func (p *Pointer) Release() { p.pressed = false }

func (p *Pointer) Intent(player component.Rect) component.Intent {
	if !p.pressed {
		return component.Intent{}
	}
	return Towards(p.x, p.y, player)
}
