// internal/state/intro_state.go
package state

import (
	"pulka/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IntroState — заставка уровня: название игры, номер уровня, кнопка старта
type IntroState struct {
	sm          *StateMachine
	ctx         *Context
	startButton *ui.Button
}

func NewIntroState(sm *StateMachine, ctx *Context) *IntroState {
	return &IntroState{
		sm:          sm,
		ctx:         ctx,
		startButton: ui.NewButton("Start Level", 0.5, 0.65, ctx.Fonts.Hint),
	}
}

func (s *IntroState) Enter() {}

func (s *IntroState) Update(now time.Duration) {
	s.ctx.pollInput()

	start := inpututil.IsKeyJustPressed(ebiten.KeyS) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		s.ctx.clicked(s.startButton)
	if start && s.ctx.Game.StartLevel() {
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	}
}

func (s *IntroState) Draw(screen *ebiten.Image) {
	s.ctx.drawField(screen)
	s.startButton.Draw(screen, s.ctx.hovered(s.startButton))
}

func (s *IntroState) Exit() {}
