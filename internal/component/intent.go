// internal/component/intent.go
package component

// Intent — направленное намерение игрока на текущий кадр.
// Вверх/вниз и влево/вправо независимы, диагональ — сумма двух осей.
type Intent struct {
	Up, Down, Left, Right bool
}

// Any сообщает, активно ли хотя бы одно направление
func (i Intent) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Merge объединяет два намерения по ИЛИ
func (i Intent) Merge(o Intent) Intent {
	return Intent{
		Up:    i.Up || o.Up,
		Down:  i.Down || o.Down,
		Left:  i.Left || o.Left,
		Right: i.Right || o.Right,
	}
}
