// pkg/render/color.go
package render

import (
	"image/color"
	"pulka/internal/config"
)

// Palette holds all the colors the field renderer needs.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Player     color.RGBA
	Projectile color.RGBA
	GoalA      color.RGBA
	GoalB      color.RGBA
	GoalBorder color.RGBA
	Overlay    color.RGBA
}

// DefaultPalette собирает палитру из config
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Text:       config.TextColor,
		Player:     config.PlayerColor,
		Projectile: config.ProjectileColor,
		GoalA:      config.GoalColorA,
		GoalB:      config.GoalColorB,
		GoalBorder: config.GoalBorderColor,
		Overlay:    config.OverlayColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
