package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fitrack/internal/app"
	"fitrack/internal/catalog"
	"fitrack/internal/config"
	"fitrack/internal/logging"
	"fitrack/internal/progress"
)

const testCatalogYAML = `plans:
  - id: a
    name: ALPHA
    description: First plan.
    exercises:
      - {id: "1", name: SQUATS, sets: 10}
      - {id: "2", name: LUNGES, sets: 8}
  - id: b
    name: BETA
    exercises:
      - {id: "3", name: PLANK, sets: 1}
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func fixedConfig(cfg config.Config) configLoader {
	return func() (config.Config, error) {
		return cfg, nil
	}
}

func TestUICommandWiresConfigIntoApp(t *testing.T) {
	t.Setenv("FITRACK_HOME", t.TempDir())
	cfg := config.Default()
	delay := 0
	rest := 5
	cfg.Session.TransitionDelayMS = &delay
	cfg.Session.RestDurationSec = &rest
	cfg.Session.CounterScope = "session"
	cfg.Session.MinutesPerExercise = 3

	logOpened := 0
	var got app.Options
	cmd := NewUICommand(
		&bytes.Buffer{},
		fixedConfig(cfg),
		func(level string) (logging.Logger, io.Closer) {
			logOpened++
			return logging.Nop(), nil
		},
		func(opts app.Options) error {
			got = opts
			return nil
		},
	)

	if err := cmd.Run([]string{"--catalog", writeTestCatalog(t)}); err != nil {
		t.Fatalf("expected ui command to succeed, got err=%v", err)
	}
	if logOpened != 1 {
		t.Fatalf("expected UI logging to be configured once, got %d", logOpened)
	}
	if got.Catalog == nil || got.Catalog.Len() != 2 {
		t.Fatalf("expected catalog from flag, got %#v", got.Catalog)
	}
	if got.Progress == nil || got.Progress.Scope() != progress.CounterScopeSession {
		t.Fatalf("expected session-scoped progress store")
	}
	if got.Timing.TransitionDelay != 0 || got.Timing.RestDuration != 5 {
		t.Fatalf("unexpected timing: %+v", got.Timing)
	}
	if got.Keybindings == nil {
		t.Fatalf("expected keybindings")
	}
	got.Progress.MarkDone("SQUATS")
	if p := got.Progress.Snapshot(); p.Minutes != 3 {
		t.Fatalf("expected configured minutes per exercise, got %v", p.Minutes)
	}
}

func TestUICommandPropagatesRunError(t *testing.T) {
	t.Setenv("FITRACK_HOME", t.TempDir())
	cmd := NewUICommand(&bytes.Buffer{}, fixedConfig(config.Default()), nil, func(app.Options) error {
		return app.ErrProgressUnavailable
	})
	if err := cmd.Run(nil); !errors.Is(err, app.ErrProgressUnavailable) {
		t.Fatalf("expected run error, got %v", err)
	}
}

func TestUICommandRejectsUnknownCounterScope(t *testing.T) {
	t.Setenv("FITRACK_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Session.CounterScope = "forever"
	called := false
	cmd := NewUICommand(&bytes.Buffer{}, fixedConfig(cfg), nil, func(app.Options) error {
		called = true
		return nil
	})
	if err := cmd.Run(nil); err == nil {
		t.Fatalf("expected counter scope error")
	}
	if called {
		t.Fatalf("expected ui not to run")
	}
}

func TestPlansCommandPrintsDefaultCatalog(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewPlansCommand(stdout, &bytes.Buffer{}, fixedConfig(config.Default()))
	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected plans to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "EXERCISES") {
		t.Fatalf("expected header in output, got %q", out)
	}
	if !strings.Contains(out, "FULL BODY") {
		t.Fatalf("expected built-in plan in output, got %q", out)
	}
}

func TestPlansCommandUsesCatalogFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewPlansCommand(stdout, &bytes.Buffer{}, fixedConfig(config.Default()))
	if err := cmd.Run([]string{"--catalog", writeTestCatalog(t)}); err != nil {
		t.Fatalf("expected plans to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "ALPHA") || !strings.Contains(out, "BETA") || strings.Contains(out, "FULL BODY") {
		t.Fatalf("unexpected plans output: %q", out)
	}
}

func TestShowCommandPrintsExercises(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewShowCommand(stdout, &bytes.Buffer{}, fixedConfig(config.Default()))
	if err := cmd.Run([]string{"--catalog", writeTestCatalog(t), "a"}); err != nil {
		t.Fatalf("expected show to succeed, got err=%v", err)
	}
	out := stdout.String()
	for _, want := range []string{"ALPHA (a)", "First plan.", "SQUATS", "x10", "LUNGES"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
}

func TestShowCommandYAMLRoundTripsThroughCatalog(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewShowCommand(stdout, &bytes.Buffer{}, fixedConfig(config.Default()))
	if err := cmd.Run([]string{"--format", "yaml", "0"}); err != nil {
		t.Fatalf("expected show to succeed, got err=%v", err)
	}
	doc := "plans:\n" + indentLines(stdout.String(), "  - ", "    ")
	parsed, err := catalog.Parse([]byte(doc), "yaml")
	if err != nil {
		t.Fatalf("expected yaml output to parse as a catalog, got %v\n%s", err, doc)
	}
	plan, err := parsed.Plan("0")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Name != "FULL BODY" || len(plan.Exercises) != 7 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestShowCommandUnknownPlan(t *testing.T) {
	cmd := NewShowCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedConfig(config.Default()))
	err := cmd.Run([]string{"missing"})
	if !errors.Is(err, catalog.ErrPlanNotFound) {
		t.Fatalf("expected plan not found, got %v", err)
	}
}

func TestShowCommandRequiresPlanID(t *testing.T) {
	cmd := NewShowCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedConfig(config.Default()))
	err := cmd.Run(nil)
	if err == nil || !strings.Contains(err.Error(), "plan id is required") {
		t.Fatalf("expected plan id validation error, got %v", err)
	}
}

func TestConfigCommandPrintsEffectiveJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FITRACK_HOME", home)
	if err := os.WriteFile(filepath.Join(home, "keybindings.json"), []byte(`{"fit.done":"x"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := config.Default()
	cfg.Session.CounterScope = "session"

	stdout := &bytes.Buffer{}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{}, fixedConfig(cfg))
	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected config to succeed, got err=%v", err)
	}
	var out configOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("expected valid json output, got err=%v, raw=%q", err, stdout.String())
	}
	if out.Session.CounterScope != "session" || out.Session.TransitionDelayMS != 2000 || out.Session.RestDurationSec != 2 {
		t.Fatalf("unexpected session config: %+v", out.Session)
	}
	if out.Keybindings[app.KeyCommandDone] != "x" {
		t.Fatalf("expected keybinding override, got %q", out.Keybindings[app.KeyCommandDone])
	}
	if out.KeybindingsPath != filepath.Join(home, "keybindings.json") {
		t.Fatalf("unexpected keybindings path: %q", out.KeybindingsPath)
	}
}

func TestConfigCommandDefaultsTOML(t *testing.T) {
	t.Setenv("FITRACK_HOME", t.TempDir())
	stdout := &bytes.Buffer{}
	loader := func() (config.Config, error) {
		return config.Config{}, errors.New("should not load")
	}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{}, loader)
	if err := cmd.Run([]string{"--defaults", "--format", "toml"}); err != nil {
		t.Fatalf("expected config to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "[session]") || !strings.Contains(out, "counter_scope") || !strings.Contains(out, "lifetime") {
		t.Fatalf("unexpected toml output: %q", out)
	}
}

func TestConfigCommandRejectsFormat(t *testing.T) {
	cmd := NewConfigCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedConfig(config.Default()))
	if err := cmd.Run([]string{"--format", "xml"}); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestBuildCommandsRegistersAll(t *testing.T) {
	commands := buildCommands(defaultCommandWiring(&bytes.Buffer{}, &bytes.Buffer{}))
	for _, name := range []string{"ui", "plans", "show", "config"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("expected %q command", name)
		}
	}
}

func indentLines(text, first, rest string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = first + line
			continue
		}
		lines[i] = rest + line
	}
	return strings.Join(lines, "\n") + "\n"
}
