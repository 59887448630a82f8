// internal/state/result_state.go
package state

import (
	"pulka/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultState — проигрыш или пройденная игра. Последний кадр замирает,
// поверх него надпись и кнопка перезапуска.
type ResultState struct {
	sm            *StateMachine
	ctx           *Context
	restartButton *ui.Button
}

func NewResultState(sm *StateMachine, ctx *Context) *ResultState {
	return &ResultState{
		sm:            sm,
		ctx:           ctx,
		restartButton: ui.NewButton("Restart Game", 0.5, 0.72, ctx.Fonts.Hint),
	}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(now time.Duration) {
	s.ctx.pollInput()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || s.ctx.clicked(s.restartButton) {
		s.ctx.Game.RestartGame()
		s.sm.SetState(NewIntroState(s.sm, s.ctx))
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	s.ctx.drawField(screen)
	s.restartButton.Draw(screen, s.ctx.hovered(s.restartButton))
}

func (s *ResultState) Exit() {}
