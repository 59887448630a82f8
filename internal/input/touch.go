// internal/input/touch.go
package input

import "pulka/internal/component"

type touchPoint struct {
	id   int
	x, y float64
}

// Touch — сенсорный ввод. Управляет самое старое из активных касаний,
// положение сравнивается с игроком каждый кадр.
type Touch struct {
	active []touchPoint
}

func NewTouch() *Touch {
	return &Touch{}
}

func (t *Touch) index(id int) int {
	for i, tp := range t.active {
		if tp.id == id {
			return i
		}
	}
	return -1
}

// Begin регистрирует касание. Повторный Begin с тем же id обновляет позицию.
func (t *Touch) Begin(id int, x, y float64) {
	if i := t.index(id); i >= 0 {
		t.active[i].x, t.active[i].y = x, y
		return
	}
	t.active = append(t.active, touchPoint{id: id, x: x, y: y})
}

func (t *Touch) Move(id int, x, y float64) {
	if i := t.index(id); i >= 0 {
		t.active[i].x, t.active[i].y = x, y
	}
}

func (t *Touch) End(id int) {
	if i := t.index(id); i >= 0 {
		t.active = append(t.active[:i], t.active[i+1:]...)
	}
}

// Active — есть ли хотя бы одно касание
func (t *Touch) Active() bool {
	return len(t.active) > 0
}

func (t *Touch) Intent(player component.Rect) component.Intent {
	if len(t.active) == 0 {
		return component.Intent{}
	}
	tp := t.active[0]
	return Towards(tp.x, tp.y, player)
}
