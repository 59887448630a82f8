// internal/ui/level_indicator.go
package ui

import (
	"pulka/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelIndicator отображает пройденные уровни рядом с надписью "Level N".
type LevelIndicator struct {
	X, Y float32
}

const (
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// Draw рисует levelCount прямоугольников, закрашены уже пройденные (до level-1).
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, levelCount int) {
	for j := 0; j < levelCount; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		// Рисуем обводку для каждого прямоугольника
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, config.LevelBorder, true)
		if j < level-1 {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, config.LevelFillColor, true)
		}
	}
}
