// internal/app/setup.go
package app

import (
	"fmt"
	"pulka/internal/config"
	"pulka/internal/defs"
	"pulka/internal/input"
	"pulka/internal/utils"
)

// Devices — все источники ввода. Фронтенд заполняет их сырыми событиями,
// а какие из них управляют игроком, решает вариант.
type Devices struct {
	Keyboard *input.Keyboard
	Pointer  *input.Pointer
	Touch    *input.Touch
}

func NewDevices() Devices {
	return Devices{
		Keyboard: input.NewKeyboard(),
		Pointer:  input.NewPointer(),
		Touch:    input.NewTouch(),
	}
}

// Provider собирает источник намерения для варианта
func (d Devices) Provider(v config.Variant) input.Provider {
	if v == config.VariantMobile {
		return input.Combined{d.Touch, d.Keyboard}
	}
	return input.Combined{d.Keyboard, d.Pointer}
}

// Setup собирает игру по настройкам запуска: расписание уровней,
// устройства ввода, генератор случайных чисел и логирование событий.
func Setup(s config.Settings) (*Game, Devices, error) {
	var (
		lib defs.Library
		err error
	)
	if s.LevelsPath != "" {
		lib, err = defs.LoadLevelDefinitions(s.LevelsPath)
	} else {
		lib, err = defs.DefaultLibrary()
	}
	if err != nil {
		return nil, Devices{}, fmt.Errorf("load levels: %w", err)
	}

	schedule, err := lib.Schedule(string(s.Variant))
	if err != nil {
		return nil, Devices{}, err
	}

	devices := NewDevices()
	g, err := NewGame(schedule, devices.Provider(s.Variant), utils.NewPRNGService(s.Seed))
	if err != nil {
		return nil, Devices{}, err
	}
	g.AttachLogger(nil)
	return g, devices, nil
}
