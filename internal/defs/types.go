// internal/defs/types.go
package defs

import (
	"errors"
	"time"
)

// ErrInvalidLevels оборачивает все ошибки валидации расписания уровней.
var ErrInvalidLevels = errors.New("invalid level definitions")

// LevelDefinition описывает параметры одного уровня.
type LevelDefinition struct {
	Number          int `json:"level"`
	SpawnIntervalMs int `json:"spawn_interval_ms"`
}

// SpawnInterval — минимальное время между появлением снарядов
func (d LevelDefinition) SpawnInterval() time.Duration {
	return time.Duration(d.SpawnIntervalMs) * time.Millisecond
}

// Schedule — упорядоченная последовательность уровней одного варианта.
type Schedule struct {
	Levels []LevelDefinition
}

// Count возвращает число уровней.
func (s Schedule) Count() int {
	return len(s.Levels)
}

// SpawnInterval возвращает интервал для уровня (нумерация с 1).
func (s Schedule) SpawnInterval(level int) (time.Duration, bool) {
	if level < 1 || level > len(s.Levels) {
		return 0, false
	}
	return s.Levels[level-1].SpawnInterval(), true
}

// Library — расписания по вариантам ввода ("desktop", "mobile").
type Library map[string]Schedule
