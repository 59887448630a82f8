// internal/ui/button.go
package ui

import (
	"image/color"
	"pulka/internal/config"
	"pulka/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
// Позиция задаётся центром в долях экрана, как у кнопок поверх canvas.
type Button struct {
	Text       string
	CenterX    float64 // доля ширины экрана
	CenterY    float64 // доля высоты экрана
	Width      float32
	Height     float32
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	fontFace   font.Face
}

// NewButton создает новую кнопку.
func NewButton(label string, centerX, centerY float64, fontFace font.Face) *Button {
	return &Button{
		Text:       label,
		CenterX:    centerX,
		CenterY:    centerY,
		Width:      config.ButtonWidth,
		Height:     config.ButtonHeight,
		TextColor:  config.TextColor,
		BgColor:    config.ButtonColor,
		HoverColor: render.DarkenColor(config.ButtonColor),
		fontFace:   fontFace,
	}
}

// Bounds возвращает прямоугольник кнопки для экрана заданного размера
func (b *Button) Bounds(screenW, screenH float64) (x, y, w, h float32) {
	x = float32(screenW*b.CenterX) - b.Width/2
	y = float32(screenH*b.CenterY) - b.Height/2
	return x, y, b.Width, b.Height
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(px, py, screenW, screenH float64) bool {
	x, y, w, h := b.Bounds(screenW, screenH)
	return px >= float64(x) && px <= float64(x+w) && py >= float64(y) && py <= float64(y+h)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y, w, h := b.Bounds(float64(sw), float64(sh))

	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonBorder, false)

	if b.fontFace == nil {
		return
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	tx := int(x+w/2) - bounds.Dx()/2
	ty := int(y+h/2) + bounds.Dy()/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, b.TextColor)
}
