package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultLogLevel            = "info"
	defaultTransitionDelayMS   = 2000
	defaultRestDurationSec     = 2
	defaultMinutesPerExercise  = 2.5
	defaultCaloriesPerExercise = 6.3
	defaultCounterScope        = "lifetime"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Catalog CatalogConfig `toml:"catalog"`
	Session SessionConfig `toml:"session"`
	UI      UIConfig      `toml:"ui"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

// SessionConfig tunes the workout session. Delay and duration are pointers
// so an explicit zero in the file is kept rather than replaced by a default.
type SessionConfig struct {
	TransitionDelayMS   *int    `toml:"transition_delay_ms"`
	RestDurationSec     *int    `toml:"rest_duration_sec"`
	MinutesPerExercise  float64 `toml:"minutes_per_exercise"`
	CaloriesPerExercise float64 `toml:"calories_per_exercise"`
	CounterScope        string  `toml:"counter_scope"`
}

type UIConfig struct {
	KeybindingsPath string `toml:"keybindings_path"`
}

func Default() Config {
	delay := defaultTransitionDelayMS
	rest := defaultRestDurationSec
	return Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
		Session: SessionConfig{
			TransitionDelayMS:   &delay,
			RestDurationSec:     &rest,
			MinutesPerExercise:  defaultMinutesPerExercise,
			CaloriesPerExercise: defaultCaloriesPerExercise,
			CounterScope:        defaultCounterScope,
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing or empty file yields
// the defaults.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) TransitionDelay() time.Duration {
	if c.Session.TransitionDelayMS == nil || *c.Session.TransitionDelayMS < 0 {
		return defaultTransitionDelayMS * time.Millisecond
	}
	return time.Duration(*c.Session.TransitionDelayMS) * time.Millisecond
}

func (c Config) RestDuration() int {
	if c.Session.RestDurationSec == nil || *c.Session.RestDurationSec < 0 {
		return defaultRestDurationSec
	}
	return *c.Session.RestDurationSec
}

func (c Config) MinutesPerExercise() float64 {
	if c.Session.MinutesPerExercise <= 0 {
		return defaultMinutesPerExercise
	}
	return c.Session.MinutesPerExercise
}

func (c Config) CaloriesPerExercise() float64 {
	if c.Session.CaloriesPerExercise <= 0 {
		return defaultCaloriesPerExercise
	}
	return c.Session.CaloriesPerExercise
}

func (c Config) CounterScope() string {
	scope := strings.ToLower(strings.TrimSpace(c.Session.CounterScope))
	if scope == "" {
		return defaultCounterScope
	}
	return scope
}

// CatalogPath returns the resolved catalog file, or "" for the built-in catalog.
func (c Config) CatalogPath() (string, error) {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return "", nil
	}
	return resolveConfigPath(c.Catalog.Path)
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	if strings.TrimSpace(c.UI.KeybindingsPath) == "" {
		return KeybindingsPath()
	}
	return resolveConfigPath(c.UI.KeybindingsPath)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
