// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go-hex-territory/pkg/hexmap"

	"gopkg.in/yaml.v3"
)

// Settings игровые параметры, которые можно переопределить YAML-файлом
type Settings struct {
	Grid     GridSettings   `yaml:"grid"`
	Player   PlayerSettings `yaml:"player"`
	Secure   SecureSettings `yaml:"secure"`
	Spawn    SpawnSettings  `yaml:"spawn"`
	Seed     int64          `yaml:"seed"`      // 0 = от времени
	LogLevel string         `yaml:"log_level"` // debug, info, warn, error
	LogFile  string         `yaml:"log_file"`  // только для терминальной версии
}

type GridSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSettings struct {
	HP                int     `yaml:"hp"`
	StepDuration      float64 `yaml:"step_duration"`
	KnockbackDuration float64 `yaml:"knockback_duration"`
	Invincibility     float64 `yaml:"invincibility"`
}

type SecureSettings struct {
	Window         float64  `yaml:"window"`
	CaptureFxDelay float64  `yaml:"capture_fx_delay"`
	RequiredDirs   []string `yaml:"required_dirs"`
	Score          int      `yaml:"score"`
}

type SpawnSettings struct {
	InitialDelay float64 `yaml:"initial_delay"`
	Interval     float64 `yaml:"interval"`
	MaxZones     int     `yaml:"max_zones"`
	MinDistance  int     `yaml:"min_distance"`
}

// Default значения оригинальной игры
func Default() *Settings {
	return &Settings{
		Grid: GridSettings{Width: 9, Height: 9},
		Player: PlayerSettings{
			HP:                3,
			StepDuration:      0.2,
			KnockbackDuration: 0.27,
			Invincibility:     2.0,
		},
		Secure: SecureSettings{
			Window:         3.0,
			CaptureFxDelay: 0.25,
			RequiredDirs:   []string{"NW", "SW"},
			Score:          10,
		},
		Spawn: SpawnSettings{
			InitialDelay: 1.0,
			Interval:     5.0,
			MaxZones:     3,
			MinDistance:  3,
		},
		LogLevel: "info",
		LogFile:  "game_tui.log",
	}
}

// Load читает YAML. Незаданные поля берутся из Default, некорректные исправляются.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	for _, fix := range s.Validate() {
		slog.Warn("settings corrected", "problem", fix)
	}
	return s, nil
}

// LoadFromEnv берёт путь из CONFIG_PATH; без переменной возвращает Default.
func LoadFromEnv() (*Settings, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate заменяет некорректные значения на значения по умолчанию
// и возвращает список исправлений.
func (s *Settings) Validate() []string {
	d := Default()
	var fixes []string
	fix := func(msg string, args ...interface{}) {
		fixes = append(fixes, fmt.Sprintf(msg, args...))
	}

	if s.Grid.Width < 1 || s.Grid.Height < 1 {
		fix("grid %dx%d is empty, using %dx%d", s.Grid.Width, s.Grid.Height, d.Grid.Width, d.Grid.Height)
		s.Grid = d.Grid
	}
	if s.Player.HP < 1 {
		fix("player.hp %d < 1", s.Player.HP)
		s.Player.HP = d.Player.HP
	}
	if s.Player.StepDuration <= 0 {
		fix("player.step_duration %v <= 0", s.Player.StepDuration)
		s.Player.StepDuration = d.Player.StepDuration
	}
	if s.Player.KnockbackDuration <= 0 {
		fix("player.knockback_duration %v <= 0", s.Player.KnockbackDuration)
		s.Player.KnockbackDuration = d.Player.KnockbackDuration
	}
	if s.Player.Invincibility < 0 {
		fix("player.invincibility %v < 0", s.Player.Invincibility)
		s.Player.Invincibility = d.Player.Invincibility
	}
	if s.Secure.Window <= 0 {
		fix("secure.window %v <= 0", s.Secure.Window)
		s.Secure.Window = d.Secure.Window
	}
	if s.Secure.CaptureFxDelay < 0 {
		fix("secure.capture_fx_delay %v < 0", s.Secure.CaptureFxDelay)
		s.Secure.CaptureFxDelay = d.Secure.CaptureFxDelay
	}
	if s.Spawn.Interval <= 0 {
		fix("spawn.interval %v <= 0", s.Spawn.Interval)
		s.Spawn.Interval = d.Spawn.Interval
	}
	if s.Spawn.InitialDelay < 0 {
		fix("spawn.initial_delay %v < 0", s.Spawn.InitialDelay)
		s.Spawn.InitialDelay = d.Spawn.InitialDelay
	}
	if s.Spawn.MaxZones < 0 {
		fix("spawn.max_zones %d < 0", s.Spawn.MaxZones)
		s.Spawn.MaxZones = d.Spawn.MaxZones
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		fix("%v", err)
		s.LogLevel = d.LogLevel
	}
	return fixes
}

// Directions переводит имена направлений; неизвестные пропускаются.
// Добор до трёх делает сама зона.
func (s SecureSettings) Directions() ([]hexmap.Direction, error) {
	dirs := make([]hexmap.Direction, 0, len(s.RequiredDirs))
	var errs []error
	for _, name := range s.RequiredDirs {
		d, err := hexmap.ParseDirection(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dirs = append(dirs, d)
	}
	return dirs, errors.Join(errs...)
}

// ParseLogLevel переводит строку уровня в slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
