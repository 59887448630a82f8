package input

import (
	"pulka/internal/component"
	"testing"
)

var player = component.Rect{X: 100, Y: 100, W: 20.8, H: 36}

func TestTowards(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want component.Intent
	}{
		{"inside", 110, 110, component.Intent{}},
		{"above", 110, 50, component.Intent{Up: true}},
		{"below", 110, 200, component.Intent{Down: true}},
		{"left", 10, 110, component.Intent{Left: true}},
		{"right", 300, 110, component.Intent{Right: true}},
		{"up-left", 10, 10, component.Intent{Up: true, Left: true}},
		{"down-right", 300, 300, component.Intent{Down: true, Right: true}},
		{"on the edge", 100, 136, component.Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Towards(tt.x, tt.y, player); got != tt.want {
				t.Errorf("Towards(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestKeyboard(t *testing.T) {
	k := NewKeyboard()
	k.KeyDown(KeyArrowUp)
	k.KeyDown(KeyArrowRight)
	k.KeyDown("KeyQ") // игнорируется

	got := k.Intent(player)
	if got != (component.Intent{Up: true, Right: true}) {
		t.Errorf("intent = %+v", got)
	}

	k.KeyUp(KeyArrowUp)
	k.KeyUp("Escape")
	if got := k.Intent(player); got != (component.Intent{Right: true}) {
		t.Errorf("after release intent = %+v", got)
	}

	k.Reset()
	if k.Intent(player).Any() {
		t.Error("reset should release all keys")
	}
}

func TestPointerOnlyWhilePressed(t *testing.T) {
	p := NewPointer()
	p.Move(400, 110)
	if p.Intent(player).Any() {
		t.Error("released pointer should not steer")
	}
	p.Press()
	if got := p.Intent(player); got != (component.Intent{Right: true}) {
		t.Errorf("intent = %+v", got)
	}
	// позиция сравнивается с текущим положением игрока
	moved := player
	moved.X = 500
	if got := p.Intent(moved); got != (component.Intent{Left: true}) {
		t.Errorf("intent vs moved player = %+v", got)
	}
	p.Release()
	if p.Intent(player).Any() {
		t.Error("pointer should stop after release")
	}
}

func TestTouchOldestWins(t *testing.T) {
	tc := NewTouch()
	tc.Begin(1, 10, 110)  // слева
	tc.Begin(2, 300, 110) // справа
	if got := tc.Intent(player); got != (component.Intent{Left: true}) {
		t.Errorf("intent = %+v, want left", got)
	}

	tc.Move(1, 110, 10)
	if got := tc.Intent(player); got != (component.Intent{Up: true}) {
		t.Errorf("after move intent = %+v, want up", got)
	}

	tc.End(1)
	if got := tc.Intent(player); got != (component.Intent{Right: true}) {
		t.Errorf("after end intent = %+v, want right", got)
	}

	tc.End(2)
	if tc.Active() || tc.Intent(player).Any() {
		t.Error("no touches should mean no intent")
	}
	tc.End(42) // неизвестный id
	tc.Move(42, 0, 0)
}

func TestCombined(t *testing.T) {
	k := NewKeyboard()
	tc := NewTouch()
	c := Combined{k, tc}

	k.KeyDown(KeyArrowDown)
	tc.Begin(0, 10, 110)

	want := component.Intent{Down: true, Left: true}
	if got := c.Intent(player); got != want {
		t.Errorf("combined = %+v, want %+v", got, want)
	}
}
