package main

import (
	"flag"
	"io"

	"fitrack/internal/app"
	"fitrack/internal/config"
	"fitrack/internal/logging"
)

type uiLogOpener func(level string) (logging.Logger, io.Closer)

type UICommand struct {
	stderr     io.Writer
	loadConfig configLoader
	openLog    uiLogOpener
	runUI      func(app.Options) error
}

func NewUICommand(stderr io.Writer, loadConfig configLoader, openLog uiLogOpener, runUI func(app.Options) error) *UICommand {
	return &UICommand{
		stderr:     stderr,
		loadConfig: loadConfig,
		openLog:    openLog,
		runUI:      runUI,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	catalogPath := fs.String("catalog", "", "catalog file (.toml, .yaml, .yml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger := logging.Nop()
	if c.openLog != nil {
		var closer io.Closer
		logger, closer = c.openLog(cfg.LogLevel())
		if closer != nil {
			defer closer.Close()
		}
	}

	plans, err := loadCatalog(cfg, *catalogPath)
	if err != nil {
		return err
	}
	store, err := newProgressStore(cfg)
	if err != nil {
		return err
	}
	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return err
	}
	bindings, err := app.LoadKeybindings(keybindingsPath)
	if err != nil {
		return err
	}

	logger.Info("ui_start",
		logging.F("plans", plans.Len()),
		logging.F("counter_scope", store.Scope()),
		logging.F("transition_delay", cfg.TransitionDelay()))
	err = c.runUI(app.Options{
		Catalog:     plans,
		Progress:    store,
		Timing:      sessionTiming(cfg),
		Keybindings: bindings,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("ui_exit", logging.F("error", err))
		return err
	}
	logger.Info("ui_exit")
	return nil
}

// openUILog sends logs to the data dir while the UI owns the terminal. Any
// failure falls back to a discarding logger.
func openUILog(level string) (logging.Logger, io.Closer) {
	path, err := config.UILogPath()
	if err != nil {
		return logging.Nop(), nil
	}
	logger, closer, err := logging.OpenFile(path, logging.ParseLevel(level))
	if err != nil {
		return logging.Nop(), nil
	}
	return logger, closer
}
