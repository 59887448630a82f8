// internal/state/play_state.go
package state

import (
	"pulka/internal/app"
	"pulka/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayState — идёт уровень, один шаг симуляции на кадр
type PlayState struct {
	sm        *StateMachine
	ctx       *Context
	indicator *ui.LevelIndicator
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{
		sm:        sm,
		ctx:       ctx,
		indicator: ui.NewLevelIndicator(100, 16),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(now time.Duration) {
	s.ctx.pollInput()
	s.ctx.Game.Update(now)

	// Победа или проигрыш останавливают цикл до действия игрока
	if s.ctx.Game.Phase() != app.Running {
		s.sm.SetState(ForPhase(s.sm, s.ctx))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.ctx.drawField(screen)
	s.indicator.Draw(screen, s.ctx.Game.Level(), s.ctx.Game.LevelCount())
}

func (s *PlayState) Exit() {}
