// internal/app/game.go
package app

import (
	"fmt"
	"pulka/internal/component"
	"pulka/internal/config"
	"pulka/internal/defs"
	"pulka/internal/entity"
	"pulka/internal/event"
	"pulka/internal/input"
	"pulka/internal/system"
	"pulka/internal/utils"
	"time"
)

// Game — контроллер уровней: номер уровня, интервал спавна, фаза.
// Владеет миром и симуляцией, глобального состояния нет.
type Game struct {
	World           *entity.World
	Simulation      *system.Simulation
	EventDispatcher *event.Dispatcher
	Input           input.Provider
	Rng             *utils.PRNGService

	schedule      defs.Schedule
	level         int
	spawnInterval time.Duration
	phase         Phase
}

// NewGame создаёт игру на первом уровне в фазе AwaitingStart.
func NewGame(schedule defs.Schedule, provider input.Provider, rng *utils.PRNGService) (*Game, error) {
	if schedule.Count() == 0 {
		return nil, fmt.Errorf("%w: empty schedule", defs.ErrInvalidLevels)
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	world := entity.NewWorld(config.ScreenWidth, config.ScreenHeight)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		Simulation:      system.NewSimulation(world, rng, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Input:           provider,
		Rng:             rng,
		schedule:        schedule,
	}
	g.resetToFirstLevel()
	return g, nil
}

func (g *Game) Phase() Phase                 { return g.phase }
func (g *Game) Level() int                   { return g.level }
func (g *Game) LevelCount() int              { return g.schedule.Count() }
func (g *Game) SpawnInterval() time.Duration { return g.spawnInterval }

// StartLevel запускает текущий уровень. Вне AwaitingStart ничего не делает.
func (g *Game) StartLevel() bool {
	if g.phase != AwaitingStart {
		return false
	}
	g.phase = Running
	g.dispatch(event.LevelStarted)
	return true
}

// RestartGame возвращает игру на первый уровень из любой фазы.
func (g *Game) RestartGame() {
	g.resetToFirstLevel()
	g.dispatch(event.GameRestarted)
}

// Resize передаёт новый размер поля в мир.
func (g *Game) Resize(width, height float64) {
	g.World.Resize(width, height)
}

// Update выполняет один кадр. Симуляция идёт только в фазе Running,
// now — монотонное время с запуска программы.
func (g *Game) Update(now time.Duration) component.Outcome {
	if g.phase != Running {
		return component.Continue
	}

	var intent component.Intent
	if g.Input != nil {
		intent = g.Input.Intent(g.World.Player.Bounds())
	}

	outcome := g.Simulation.Step(intent, now, g.spawnInterval)
	switch outcome {
	case component.Won:
		g.advance()
	case component.Lost:
		g.phase = Lost
		g.dispatch(event.LevelLost)
	}
	return outcome
}

func (g *Game) advance() {
	g.dispatch(event.LevelWon)
	g.level++
	if g.level > g.schedule.Count() {
		// Последний кадр остаётся в мире для экрана победы
		g.phase = Complete
		g.dispatch(event.GameCompleted)
		return
	}
	g.spawnInterval, _ = g.schedule.SpawnInterval(g.level)
	g.World.Reset()
	g.phase = AwaitingStart
}

func (g *Game) resetToFirstLevel() {
	g.level = 1
	g.spawnInterval, _ = g.schedule.SpawnInterval(1)
	g.World.Reset()
	g.phase = AwaitingStart
}

func (g *Game) dispatch(t event.EventType) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Data: event.LevelData{Level: g.level}})
}
