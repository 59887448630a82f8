// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed levels.json
var defaultLevels []byte

// DefaultLibrary разбирает встроенное расписание уровней.
func DefaultLibrary() (Library, error) {
	return ParseLevelDefinitions(defaultLevels)
}

// LoadLevelDefinitions reads a level configuration file and builds a Library from it.
func LoadLevelDefinitions(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}
	return ParseLevelDefinitions(file)
}

// ParseLevelDefinitions разбирает JSON вида {"desktop": [...], "mobile": [...]}.
// Уровни в каждом варианте сортируются по номеру и должны идти подряд с 1.
func ParseLevelDefinitions(data []byte) (Library, error) {
	var raw map[string][]LevelDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no variants", ErrInvalidLevels)
	}

	lib := make(Library, len(raw))
	for variant, levels := range raw {
		if len(levels) == 0 {
			return nil, fmt.Errorf("%w: variant %q has no levels", ErrInvalidLevels, variant)
		}
		sorted := append([]LevelDefinition(nil), levels...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
		for i, def := range sorted {
			if def.Number != i+1 {
				return nil, fmt.Errorf("%w: variant %q: expected level %d, got %d", ErrInvalidLevels, variant, i+1, def.Number)
			}
			if def.SpawnIntervalMs <= 0 {
				return nil, fmt.Errorf("%w: variant %q level %d: spawn interval must be positive", ErrInvalidLevels, variant, def.Number)
			}
		}
		lib[variant] = Schedule{Levels: sorted}
	}
	return lib, nil
}

// Schedule возвращает расписание варианта.
func (l Library) Schedule(variant string) (Schedule, error) {
	s, ok := l[variant]
	if !ok {
		return Schedule{}, fmt.Errorf("%w: no schedule for variant %q", ErrInvalidLevels, variant)
	}
	return s, nil
}
