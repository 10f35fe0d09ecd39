// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Settings — параметры запуска, читаемые из TOML. Содержимое игры
// (культуры, цены) сюда не входит и не настраивается.
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Game    GameSettings    `toml:"game"`
	Debug   DebugSettings   `toml:"debug"`
	Logging LoggingSettings `toml:"logging"`
}

type WindowSettings struct {
	Title string  `toml:"title" validate:"required"`
	Scale float64 `toml:"scale" validate:"gt=0,lte=4"`
}

type GameSettings struct {
	StartingMoney int64   `toml:"starting_money" validate:"gte=0"`
	MaxDeltaTime  float64 `toml:"max_delta_time" validate:"gt=0,lte=1"`
}

type DebugSettings struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

type LoggingSettings struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=console json"`
}

// Defaults возвращает настройки по умолчанию.
func Defaults() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title: "Truly a game",
			Scale: 1,
		},
		Game: GameSettings{
			StartingMoney: StartingMoney,
			MaxDeltaTime:  MaxDeltaTime,
		},
		Debug: DebugSettings{
			Enabled: false,
			Address: "localhost:6060",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load читает файл поверх значений по умолчанию. Отсутствующий файл не ошибка.
func Load(path string) (*Settings, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет диапазоны значений.
func (s *Settings) Validate() error {
	return validator.New().Struct(s)
}
