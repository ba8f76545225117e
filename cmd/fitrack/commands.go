package main

import (
	"io"
	"os"

	"fitrack/internal/app"
	"fitrack/internal/config"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
	openLog    uiLogOpener
	runUI      func(app.Options) error
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		openLog:    openUILog,
		runUI:      app.Run,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring.stderr, wiring.loadConfig, wiring.openLog, wiring.runUI),
		"plans":  NewPlansCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"show":   NewShowCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
	}
}
