// internal/input/keyboard.go
package input

import "pulka/internal/component"

// Keyboard хранит нажатые клавиши направлений.
// Неизвестные клавиши молча игнорируются.
type Keyboard struct {
	pressed map[string]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[string]bool, 4)}
}

func isDirectionKey(name string) bool {
	switch name {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

func (k *Keyboard) KeyDown(name string) {
	if isDirectionKey(name) {
		k.pressed[name] = true
	}
}

func (k *Keyboard) KeyUp(name string) {
	if isDirectionKey(name) {
		delete(k.pressed, name)
	}
}

// Reset отпускает все клавиши (например, при потере фокуса окна)
func (k *Keyboard) Reset() {
	clear(k.pressed)
}

func (k *Keyboard) Intent(component.Rect) component.Intent {
	return component.Intent{
		Up:    k.pressed[KeyArrowUp],
		Down:  k.pressed[KeyArrowDown],
		Left:  k.pressed[KeyArrowLeft],
		Right: k.pressed[KeyArrowRight],
	}
}
