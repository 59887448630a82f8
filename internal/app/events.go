// internal/app/events.go
package app

import (
	"log"
	"pulka/internal/event"
)

// LogListener пишет в лог каждую смену уровня
type LogListener struct {
	logger *log.Logger
}

func NewLogListener(logger *log.Logger) *LogListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LogListener{logger: logger}
}

func (l *LogListener) OnEvent(e event.Event) {
	data, _ := e.Data.(event.LevelData)
	switch e.Type {
	case event.LevelStarted:
		l.logger.Printf("level %d started", data.Level)
	case event.LevelWon:
		l.logger.Printf("level %d won", data.Level)
	case event.LevelLost:
		l.logger.Printf("level %d lost", data.Level)
	case event.GameCompleted:
		l.logger.Printf("game completed")
	case event.GameRestarted:
		l.logger.Printf("game restarted at level %d", data.Level)
	}
}

// AttachLogger подписывает LogListener на все события уровня
func (g *Game) AttachLogger(logger *log.Logger) {
	g.EventDispatcher.SubscribeAll(NewLogListener(logger), event.AllLevelEvents...)
}
