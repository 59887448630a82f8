// cmd/game/main.go
package main

import (
	"log"
	"pulka/internal/app"
	"pulka/internal/config"
	"pulka/internal/state"
	"pulka/pkg/render"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	ctx          *state.Context
	startTime    time.Time
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.ctx.Resize(a.width, a.height)
	a.stateMachine.Update(time.Since(a.startTime))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout — поле повторяет размер окна (или вкладки браузера)
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	game, devices, err := app.Setup(settings)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := render.LoadFonts(config.TitleFontSize, config.LevelFontSize, config.HintFontSize)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("starting %s variant, %d levels", settings.Variant, game.LevelCount())

	ctx := state.NewContext(game, devices, fonts)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.ForPhase(sm, ctx))

	a := &AppGame{
		stateMachine: sm,
		ctx:          ctx,
		startTime:    time.Now(),
		width:        config.ScreenWidth,
		height:       config.ScreenHeight,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
