// cmd/game_raylib/main.go
package main

import (
	"log"
	"pulka/internal/app"
	"pulka/internal/config"
	"pulka/internal/rlfront"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	game, devices, err := app.Setup(settings)
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация ---
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	poller := rlfront.NewPoller(devices)
	renderer := rlfront.NewRenderer()
	startButton := rlfront.NewButton("Start Level", 0.5, 0.65)
	restartButton := rlfront.NewButton("Restart Game", 0.5, 0.72)
	var snapshot app.Snapshot

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		game.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		poller.Poll()

		switch game.Phase() {
		case app.AwaitingStart:
			if rl.IsKeyPressed(rl.KeyS) || rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) || startButton.IsClicked() {
				game.StartLevel()
			}
		case app.Running:
			game.Update(time.Duration(rl.GetTime() * float64(time.Second)))
		case app.Lost, app.Complete:
			if rl.IsKeyPressed(rl.KeyR) || restartButton.IsClicked() {
				game.RestartGame()
			}
		}

		// --- Отрисовка ---
		game.Snapshot(&snapshot)
		rl.BeginDrawing()
		renderer.Render(&snapshot)
		switch snapshot.Phase {
		case app.AwaitingStart:
			startButton.Draw()
		case app.Lost, app.Complete:
			restartButton.Draw()
		}
		rl.EndDrawing()
	}
}
