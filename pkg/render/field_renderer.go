// pkg/render/field_renderer.go
package render

import (
	"fmt"
	"image/color"
	"pulka/internal/app"
	"pulka/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	goalColumns = 10
	goalRows    = 10
	goalBorder  = 2
)

// FieldRenderer рисует снимок игры на ebiten.Image.
// Тексты экранов зависят от фазы: заставка уровня, HUD, проигрыш, победа.
type FieldRenderer struct {
	fonts   *Fonts
	palette Palette
	screen  *ebiten.Image
}

func NewFieldRenderer(fonts *Fonts, palette Palette) *FieldRenderer {
	return &FieldRenderer{fonts: fonts, palette: palette}
}

// On привязывает рендер к кадру и возвращает его как app.Sink.
func (r *FieldRenderer) On(screen *ebiten.Image) app.Sink {
	r.screen = screen
	return r
}

func (r *FieldRenderer) Render(s *app.Snapshot) {
	if r.screen == nil {
		return
	}
	screen := r.screen
	screen.Fill(r.palette.Background)

	if s.Phase == app.AwaitingStart {
		r.drawIntro(screen, s)
		return
	}

	r.drawGoal(screen, s.Goal)
	r.fillRect(screen, s.Player, r.palette.Player)
	for _, p := range s.Projectiles {
		r.fillRect(screen, p, r.palette.Projectile)
	}

	switch s.Phase {
	case app.Running:
		text.Draw(screen, fmt.Sprintf("Level %d", s.Level), r.fonts.Hint, 10, 30, r.palette.Text)
	case app.Lost:
		r.drawResult(screen, s, "You Lose!")
	case app.Complete:
		r.drawResult(screen, s, "You Win!")
	}
}

func (r *FieldRenderer) drawIntro(screen *ebiten.Image, s *app.Snapshot) {
	cx, cy := s.Playfield.W/2, s.Playfield.H/2
	r.centered(screen, "Pulka", r.fonts.Title, cx, cy-60)
	r.centered(screen, fmt.Sprintf("Level %d", s.Level), r.fonts.Level, cx, cy)
	r.centered(screen, "Press (s) to start the level", r.fonts.Hint, cx, cy+40)
}

func (r *FieldRenderer) drawResult(screen *ebiten.Image, s *app.Snapshot, title string) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.Playfield.W), float32(s.Playfield.H), r.palette.Overlay, false)
	cx, cy := s.Playfield.W/2, s.Playfield.H/2
	r.centered(screen, title, r.fonts.Level, cx, cy)
	r.centered(screen, "Press (r) to restart the game", r.fonts.Level, cx, cy+40)
}

// drawGoal рисует финиш клетками, как флаг на гонках
func (r *FieldRenderer) drawGoal(screen *ebiten.Image, g component.Rect) {
	cw := float32(g.W) / goalColumns
	ch := float32(g.H) / goalRows
	for row := 0; row < goalRows; row++ {
		for col := 0; col < goalColumns; col++ {
			clr := r.palette.GoalA
			if (row+col)%2 == 1 {
				clr = r.palette.GoalB
			}
			x := float32(g.X) + float32(col)*cw
			y := float32(g.Y) + float32(row)*ch
			vector.DrawFilledRect(screen, x, y, cw, ch, clr, false)
		}
	}
	vector.StrokeRect(screen, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), goalBorder, r.palette.GoalBorder, false)
}

func (r *FieldRenderer) fillRect(screen *ebiten.Image, rect component.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, true)
}

// centered рисует строку с центром по x и базовой линией на y
func (r *FieldRenderer) centered(screen *ebiten.Image, s string, face font.Face, cx, baseline float64) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2
	text.Draw(screen, s, face, x, int(baseline), r.palette.Text)
}
