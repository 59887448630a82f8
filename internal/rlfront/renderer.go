// internal/rlfront/renderer.go
package rlfront

import (
	"fmt"
	"pulka/internal/app"
	"pulka/internal/component"
	"pulka/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer — приёмник снимков для raylib. Вызывается между BeginDrawing и EndDrawing.
type Renderer struct{}

var _ app.Sink = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(s *app.Snapshot) {
	rl.ClearBackground(config.BackgroundColor)

	if s.Phase == app.AwaitingStart {
		cx, cy := int32(s.Playfield.W/2), int32(s.Playfield.H/2)
		drawCentered("Pulka", config.TitleFontSize, cx, cy-90)
		drawCentered(fmt.Sprintf("Level %d", s.Level), config.LevelFontSize, cx, cy-30)
		drawCentered("Press (s) to start the level", config.HintFontSize, cx, cy+20)
		return
	}

	drawGoal(s.Goal)
	rl.DrawRectangleRec(toRL(s.Player), config.PlayerColor)
	for _, p := range s.Projectiles {
		rl.DrawRectangleRec(toRL(p), config.ProjectileColor)
	}

	switch s.Phase {
	case app.Running:
		rl.DrawText(fmt.Sprintf("Level %d", s.Level), 10, 10, config.HUDFontSize, config.TextColor)
	case app.Lost:
		drawResult(s, "You Lose!")
	case app.Complete:
		drawResult(s, "You Win!")
	}
}

func drawResult(s *app.Snapshot, title string) {
	rl.DrawRectangle(0, 0, int32(s.Playfield.W), int32(s.Playfield.H), config.OverlayColor)
	cx, cy := int32(s.Playfield.W/2), int32(s.Playfield.H/2)
	drawCentered(title, config.LevelFontSize, cx, cy-30)
	drawCentered("Press (r) to restart the game", config.LevelFontSize, cx, cy+10)
}

func drawGoal(g component.Rect) {
	const cells = 10
	cw := float32(g.W) / cells
	ch := float32(g.H) / cells
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			clr := config.GoalColorA
			if (row+col)%2 == 1 {
				clr = config.GoalColorB
			}
			rl.DrawRectangleRec(rl.NewRectangle(float32(g.X)+float32(col)*cw, float32(g.Y)+float32(row)*ch, cw, ch), clr)
		}
	}
	rl.DrawRectangleLinesEx(toRL(g), 2, config.GoalBorderColor)
}

func drawCentered(text string, fontSize int32, cx, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, cx-w/2, y, fontSize, config.TextColor)
}

func toRL(r component.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}
