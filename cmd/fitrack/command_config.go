package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"fitrack/internal/app"
	"fitrack/internal/config"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath      string                 `json:"config_path,omitempty" toml:"config_path,omitempty"`
	KeybindingsPath string                 `json:"keybindings_path,omitempty" toml:"keybindings_path,omitempty"`
	LogPath         string                 `json:"log_path,omitempty" toml:"log_path,omitempty"`
	Logging         effectiveLoggingConfig `json:"logging" toml:"logging"`
	Catalog         effectiveCatalogConfig `json:"catalog" toml:"catalog"`
	Session         effectiveSessionConfig `json:"session" toml:"session"`
	Keybindings     map[string]string      `json:"keybindings,omitempty" toml:"keybindings,omitempty"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveCatalogConfig struct {
	Path string `json:"path" toml:"path"`
}

type effectiveSessionConfig struct {
	TransitionDelayMS   int64   `json:"transition_delay_ms" toml:"transition_delay_ms"`
	RestDurationSec     int     `json:"rest_duration_sec" toml:"rest_duration_sec"`
	MinutesPerExercise  float64 `json:"minutes_per_exercise" toml:"minutes_per_exercise"`
	CaloriesPerExercise float64 `json:"calories_per_exercise" toml:"calories_per_exercise"`
	CounterScope        string  `json:"counter_scope" toml:"counter_scope"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig configLoader) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("defaults", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func (c *ConfigCommand) buildOutput(defaults bool) (configOutput, error) {
	cfg := config.Default()
	if !defaults {
		loaded, err := c.loadConfig()
		if err != nil {
			return configOutput{}, err
		}
		cfg = loaded
	}
	out := configOutput{}
	if path, err := config.ConfigPath(); err == nil {
		out.ConfigPath = path
	}
	if path, err := config.UILogPath(); err == nil {
		out.LogPath = path
	}
	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return configOutput{}, err
	}
	out.KeybindingsPath = keybindingsPath
	catalogPath, err := cfg.CatalogPath()
	if err != nil {
		return configOutput{}, err
	}

	out.Logging = effectiveLoggingConfig{Level: cfg.LogLevel()}
	out.Catalog = effectiveCatalogConfig{Path: catalogPath}
	out.Session = effectiveSessionConfig{
		TransitionDelayMS:   cfg.TransitionDelay().Milliseconds(),
		RestDurationSec:     cfg.RestDuration(),
		MinutesPerExercise:  cfg.MinutesPerExercise(),
		CaloriesPerExercise: cfg.CaloriesPerExercise(),
		CounterScope:        cfg.CounterScope(),
	}

	bindings := app.DefaultKeybindings()
	if !defaults {
		bindings, err = app.LoadKeybindings(keybindingsPath)
		if err != nil {
			return configOutput{}, err
		}
	}
	out.Keybindings = bindings.Bindings()
	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
