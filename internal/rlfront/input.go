// internal/rlfront/input.go
package rlfront

import (
	"pulka/internal/app"
	"pulka/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = map[int32]string{
	rl.KeyUp:    input.KeyArrowUp,
	rl.KeyDown:  input.KeyArrowDown,
	rl.KeyLeft:  input.KeyArrowLeft,
	rl.KeyRight: input.KeyArrowRight,
}

// Poller переводит состояние raylib в устройства ввода игры
type Poller struct {
	devices app.Devices
	touches map[int32]bool
}

func NewPoller(devices app.Devices) *Poller {
	return &Poller{devices: devices, touches: make(map[int32]bool)}
}

func (p *Poller) Poll() {
	for key, name := range directionKeys {
		if rl.IsKeyDown(key) {
			p.devices.Keyboard.KeyDown(name)
		} else {
			p.devices.Keyboard.KeyUp(name)
		}
	}

	mouse := rl.GetMousePosition()
	p.devices.Pointer.Move(float64(mouse.X), float64(mouse.Y))
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		p.devices.Pointer.Press()
	} else {
		p.devices.Pointer.Release()
	}

	count := rl.GetTouchPointCount()
	seen := make(map[int32]bool, count)
	for i := int32(0); i < count; i++ {
		id := rl.GetTouchPointId(i)
		pos := rl.GetTouchPosition(i)
		seen[id] = true
		if p.touches[id] {
			p.devices.Touch.Move(int(id), float64(pos.X), float64(pos.Y))
		} else {
			p.devices.Touch.Begin(int(id), float64(pos.X), float64(pos.Y))
			p.touches[id] = true
		}
	}
	for id := range p.touches {
		if !seen[id] {
			p.devices.Touch.End(int(id))
			delete(p.touches, id)
		}
	}
}
