package app

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
)

const (
	KeyCommandQuit        = "ui.quit"
	KeyCommandBack        = "ui.back"
	KeyCommandHelp        = "ui.help"
	KeyCommandUp          = "ui.up"
	KeyCommandDown        = "ui.down"
	KeyCommandOpenPlan    = "home.openPlan"
	KeyCommandCopySummary = "home.copySummary"
	KeyCommandStart       = "workout.start"
	KeyCommandDone        = "fit.done"
	KeyCommandSkip        = "fit.skip"
	KeyCommandPrev        = "fit.prev"
)

var defaultKeybindingByCommand = map[string][]string{
	KeyCommandQuit:        {"q", "ctrl+c"},
	KeyCommandBack:        {"esc", "backspace"},
	KeyCommandHelp:        {"?"},
	KeyCommandUp:          {"up", "k"},
	KeyCommandDown:        {"down", "j"},
	KeyCommandOpenPlan:    {"enter"},
	KeyCommandCopySummary: {"y"},
	KeyCommandStart:       {"s", "enter"},
	KeyCommandDone:        {"d", "enter"},
	KeyCommandSkip:        {"s"},
	KeyCommandPrev:        {"p"},
}

// Keybindings resolves the keys bound to each command. Overrides come from a
// JSON file and replace every default key of the command they name.
type Keybindings struct {
	byCommand map[string][]string
}

type keybindingEntry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string][]string, len(defaultKeybindingByCommand))
	for command, keys := range defaultKeybindingByCommand {
		byCommand[command] = append([]string(nil), keys...)
	}
	for command, raw := range overrides {
		command = strings.TrimSpace(command)
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		keys := splitKeys(raw)
		if len(keys) == 0 {
			continue
		}
		byCommand[command] = keys
	}
	return &Keybindings{byCommand: byCommand}
}

// LoadKeybindings reads overrides from path. A missing or empty file yields
// the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultKeybindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeybindings(), nil
		}
		return nil, err
	}
	overrides, err := parseKeybindingOverrides(data)
	if err != nil {
		return nil, err
	}
	return NewKeybindings(overrides), nil
}

func (k *Keybindings) KeysFor(command string) []string {
	command = strings.TrimSpace(command)
	if k != nil {
		if keys := k.byCommand[command]; len(keys) > 0 {
			return append([]string(nil), keys...)
		}
	}
	return append([]string(nil), defaultKeybindingByCommand[command]...)
}

// Bindings returns the effective keys per command, comma-joined.
func (k *Keybindings) Bindings() map[string]string {
	out := make(map[string]string, len(defaultKeybindingByCommand))
	for _, command := range KnownKeybindingCommands() {
		out[command] = strings.Join(k.KeysFor(command), ",")
	}
	return out
}

// Binding builds a bubbles key binding for command, labelled with the
// primary key and desc.
func (k *Keybindings) Binding(command, desc string) key.Binding {
	keys := k.KeysFor(command)
	label := ""
	if len(keys) > 0 {
		label = keys[0]
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

func parseKeybindingOverrides(data []byte) (map[string]string, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil
	}
	out := map[string]string{}
	if data[0] == '[' {
		var entries []keybindingEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		for _, entry := range entries {
			out[strings.TrimSpace(entry.Command)] = entry.Key
		}
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys = append(keys, part)
	}
	return keys
}

func KnownKeybindingCommands() []string {
	commands := make([]string, 0, len(defaultKeybindingByCommand))
	for command := range defaultKeybindingByCommand {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}
