// internal/rlfront/button.go
package rlfront

import (
	"pulka/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в UI.
// Центр задаётся в долях экрана, прямоугольник пересчитывается каждый кадр.
type Button struct {
	Text       string
	CenterX    float32
	CenterY    float32
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	FontSize   int32
}

// NewButton создает новую кнопку.
func NewButton(text string, centerX, centerY float32) *Button {
	return &Button{
		Text:       text,
		CenterX:    centerX,
		CenterY:    centerY,
		TextColor:  config.TextColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		FontSize:   20,
	}
}

// Rect возвращает прямоугольник кнопки для текущего размера окна
func (b *Button) Rect() rl.Rectangle {
	w, h := float32(config.ButtonWidth), float32(config.ButtonHeight)
	x := float32(rl.GetScreenWidth())*b.CenterX - w/2
	y := float32(rl.GetScreenHeight())*b.CenterY - h/2
	return rl.NewRectangle(x, y, w, h)
}

// IsClicked проверяет, был ли сделан клик (или тап) по кнопке.
func (b *Button) IsClicked() bool {
	rect := b.Rect()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
		return true
	}
	return rl.IsGestureDetected(rl.GestureTap) && rl.CheckCollisionPointRec(rl.GetTouchPosition(0), rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw() {
	rect := b.Rect()
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(rect, bgColor)
	rl.DrawRectangleLinesEx(rect, 2, config.ButtonBorder)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := int32(rect.X + (rect.Width-float32(textWidth))/2)
	textY := int32(rect.Y + (rect.Height-float32(b.FontSize))/2)
	rl.DrawText(b.Text, textX, textY, b.FontSize, b.TextColor)
}
