// internal/event/types.go
package event

const (
	LevelStarted      EventType = "LevelStarted"      // Игрок начал уровень
	LevelWon          EventType = "LevelWon"          // Игрок дошёл до финиша
	LevelLost         EventType = "LevelLost"         // Игрока задел снаряд
	GameCompleted     EventType = "GameCompleted"     // Пройден последний уровень
	GameRestarted     EventType = "GameRestarted"     // Игра начата заново
	ProjectileSpawned EventType = "ProjectileSpawned" // Появился новый снаряд
)

// AllLevelEvents — события смены уровня (без ProjectileSpawned)
var AllLevelEvents = []EventType{LevelStarted, LevelWon, LevelLost, GameCompleted, GameRestarted}

// LevelData передаётся в Data у событий уровня.
type LevelData struct {
	Level int
}
