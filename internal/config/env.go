// internal/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Variant — вариант ввода. От него зависит расписание уровней.
type Variant string

const (
	VariantDesktop Variant = "desktop"
	VariantMobile  Variant = "mobile"
)

// Settings — параметры запуска, которые можно переопределить через окружение.
type Settings struct {
	Variant    Variant
	Seed       int64  // 0 — сид от текущего времени
	LevelsPath string // пусто — встроенное расписание
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load читает PULKA_VARIANT, PULKA_SEED и PULKA_LEVELS.
func Load() (Settings, error) {
	s := Settings{
		Variant:    Variant(GetEnv("PULKA_VARIANT", string(VariantDesktop))),
		LevelsPath: GetEnv("PULKA_LEVELS", ""),
	}
	switch s.Variant {
	case VariantDesktop, VariantMobile:
	default:
		return Settings{}, fmt.Errorf("unknown PULKA_VARIANT %q", s.Variant)
	}

	if raw := GetEnv("PULKA_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("parse PULKA_SEED: %w", err)
		}
		s.Seed = seed
	}
	return s, nil
}
