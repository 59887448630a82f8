// internal/state/context.go
package state

import (
	"pulka/internal/app"
	"pulka/internal/config"
	"pulka/internal/ui"
	"pulka/pkg/render"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Context — общее для всех экранов: игра, устройства ввода, рендер.
type Context struct {
	Game     *app.Game
	Devices  app.Devices
	Fonts    *render.Fonts
	Renderer *render.FieldRenderer

	snapshot      app.Snapshot
	screenW       float64
	screenH       float64
	lastClickTime time.Time

	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	tapIDs   []ebiten.TouchID
	touches  map[ebiten.TouchID]bool
}

func NewContext(game *app.Game, devices app.Devices, fonts *render.Fonts) *Context {
	return &Context{
		Game:     game,
		Devices:  devices,
		Fonts:    fonts,
		Renderer: render.NewFieldRenderer(fonts, render.DefaultPalette()),
		screenW:  config.ScreenWidth,
		screenH:  config.ScreenHeight,
		touches:  make(map[ebiten.TouchID]bool),
	}
}

// Resize запоминает размер окна и передаёт его в игру
func (c *Context) Resize(width, height int) {
	w, h := float64(width), float64(height)
	if w == c.screenW && h == c.screenH {
		return
	}
	c.screenW, c.screenH = w, h
	c.Game.Resize(w, h)
}

// pollInput переводит события ebiten в клавиатуру, указатель и касания.
func (c *Context) pollInput() {
	c.keys = inpututil.AppendJustPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		c.Devices.Keyboard.KeyDown(k.String())
	}
	c.keys = inpututil.AppendJustReleasedKeys(c.keys[:0])
	for _, k := range c.keys {
		c.Devices.Keyboard.KeyUp(k.String())
	}

	x, y := ebiten.CursorPosition()
	c.Devices.Pointer.Move(float64(x), float64(y))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.Devices.Pointer.Press()
	} else {
		c.Devices.Pointer.Release()
	}

	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])
	seen := make(map[ebiten.TouchID]bool, len(c.touchIDs))
	for _, id := range c.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		seen[id] = true
		if c.touches[id] {
			c.Devices.Touch.Move(int(id), float64(tx), float64(ty))
		} else {
			c.Devices.Touch.Begin(int(id), float64(tx), float64(ty))
			c.touches[id] = true
		}
	}
	for id := range c.touches {
		if !seen[id] {
			c.Devices.Touch.End(int(id))
			delete(c.touches, id)
		}
	}
}

// clicked — клик мышью или тап по кнопке, с защитой от двойного срабатывания
func (c *Context) clicked(b *ui.Button) bool {
	if time.Since(c.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}

	hit := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		hit = b.Contains(float64(x), float64(y), c.screenW, c.screenH)
	}
	if !hit {
		c.tapIDs = inpututil.AppendJustPressedTouchIDs(c.tapIDs[:0])
		for _, id := range c.tapIDs {
			x, y := ebiten.TouchPosition(id)
			if b.Contains(float64(x), float64(y), c.screenW, c.screenH) {
				hit = true
				break
			}
		}
	}
	if hit {
		c.lastClickTime = time.Now()
	}
	return hit
}

func (c *Context) hovered(b *ui.Button) bool {
	x, y := ebiten.CursorPosition()
	return b.Contains(float64(x), float64(y), c.screenW, c.screenH)
}

// drawField рисует текущий снимок игры
func (c *Context) drawField(screen *ebiten.Image) {
	c.Game.Snapshot(&c.snapshot)
	c.Renderer.On(screen).Render(&c.snapshot)
}

// ForPhase возвращает экран, соответствующий фазе игры
func ForPhase(sm *StateMachine, c *Context) State {
	switch c.Game.Phase() {
	case app.Running:
		return NewPlayState(sm, c)
	case app.Lost, app.Complete:
		return NewResultState(sm, c)
	default:
		return NewIntroState(sm, c)
	}
}
