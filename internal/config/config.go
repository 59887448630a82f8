// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Pulka"

	// Игрок: исходная картинка 520x900, уменьшенная в 25 раз
	PlayerSourceWidth  = 520
	PlayerSourceHeight = 900
	PlayerScaleFactor  = 1.0 / 25
	PlayerWidth        = PlayerSourceWidth * PlayerScaleFactor
	PlayerHeight       = PlayerSourceHeight * PlayerScaleFactor
	PlayerStartX       = 50.0
	PlayerStartY       = 50.0
	PlayerSpeed        = 5.0 // пикселей за кадр

	ProjectileWidth   = 20.0
	ProjectileHeight  = 5.0
	ProjectileSpeed   = 5.0   // пикселей за кадр
	SpawnOffsetX      = 100.0 // от правого края поля
	ProjectileDespawn = -10.0 // снаряд живёт, пока x > этого значения

	GoalWidth  = 100.0
	GoalHeight = 95.0

	LevelCount = 5

	ClickCooldown = 300 // мс
	ButtonWidth   = 180
	ButtonHeight  = 44

	HUDFontSize   = 20
	TitleFontSize = 40
	LevelFontSize = 30
	HintFontSize  = 20
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	TextColor       = color.RGBA{0, 0, 0, 255}
	PlayerColor     = color.RGBA{70, 100, 120, 255}
	ProjectileColor = color.RGBA{220, 60, 60, 255}
	GoalColorA      = color.RGBA{20, 20, 30, 255}
	GoalColorB      = color.RGBA{240, 240, 240, 255}
	GoalBorderColor = color.RGBA{50, 205, 50, 255}
	OverlayColor    = color.RGBA{160, 160, 160, 160} // premultiplied white
	ButtonColor     = color.RGBA{200, 200, 200, 255}
	ButtonHover     = color.RGBA{160, 160, 160, 255}
	ButtonBorder    = color.RGBA{80, 80, 80, 255}
	LevelFillColor  = color.RGBA{70, 100, 120, 220}
	LevelBorder     = color.RGBA{20, 20, 30, 255}
)
