package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".fitrack"
	homeEnvVar = "FITRACK_HOME"
)

// DataDir returns the base data directory. FITRACK_HOME overrides the
// default of ~/.fitrack.
func DataDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(homeEnvVar)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to config.toml.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// KeybindingsPath returns the default keybinding override file.
func KeybindingsPath() (string, error) {
	return dataPath("keybindings.json")
}

// UILogPath returns the log file used while the terminal UI runs.
func UILogPath() (string, error) {
	return dataPath("ui.log")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
